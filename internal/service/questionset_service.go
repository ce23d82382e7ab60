package service

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"swingshift_backend/internal/model"
	"swingshift_backend/internal/repository"
	"swingshift_backend/internal/util"

	"gorm.io/gorm"
)

// QuestionSetService owns a project's question selection: bulk reconciliation
// against the bank, single adds, and the merged rendered listing that the
// survey and the client portal consume.
type QuestionSetService struct {
	questionRepo *repository.QuestionRepository
	pqRepo       *repository.ProjectQuestionRepository
}

func NewQuestionSetService(questionRepo *repository.QuestionRepository, pqRepo *repository.ProjectQuestionRepository) *QuestionSetService {
	return &QuestionSetService{questionRepo: questionRepo, pqRepo: pqRepo}
}

type SyncQuestionsRequest struct {
	// Raw id list as submitted; entries that cannot be coerced to a positive
	// integer are dropped without failing the request.
	QuestionIDs []interface{} `json:"question_ids"`

	// Per-question option overrides keyed by decimal bank question id. An
	// absent key clears any stored override for a retained question.
	Overrides map[string]model.OptionOverrideList `json:"overrides"`
}

// SyncResult reports one reconciliation pass in terms of bank question ids.
type SyncResult struct {
	Added    []uint `json:"added"`
	Updated  []uint `json:"updated"`
	Removed  []uint `json:"removed"`
	Retained []uint `json:"retained"`
	Selected int    `json:"selected"`

	// Input entries dropped during sanitization, echoed for diagnostics.
	Rejected []string `json:"rejected,omitempty"`
}

// ParseQuestionIDs coerces a raw JSON id list to a deduplicated id slice.
// JSON numbers arrive as float64; integer-valued floats and numeric strings
// are accepted, everything else is dropped and reported back.
func ParseQuestionIDs(raw []interface{}) (ids []uint, rejected []string) {
	seen := make(map[uint]bool)
	for _, entry := range raw {
		var id uint
		switch v := entry.(type) {
		case float64:
			if v <= 0 || v != float64(uint(v)) {
				rejected = append(rejected, fmt.Sprint(v))
				continue
			}
			id = uint(v)
		case string:
			n, err := strconv.ParseUint(v, 10, 32)
			if err != nil || n == 0 {
				rejected = append(rejected, v)
				continue
			}
			id = uint(n)
		default:
			rejected = append(rejected, fmt.Sprint(v))
			continue
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids, rejected
}

// SyncPlan is the computed delta between the stored selection and the
// desired one, expressed as row-level operations plus the result sets.
type SyncPlan struct {
	Adds      []model.ProjectQuestion
	Updates   map[uint]model.OptionOverrideList // by ProjectQuestion row id
	RemoveIDs []uint                            // ProjectQuestion row ids requested gone

	Result SyncResult
}

// BuildSyncPlan reconciles the existing selection against the desired bank
// question ids. Desired questions already linked keep their row and order and
// get their override replaced or cleared; deselected links are removed unless
// answered (then retired); new selections are appended with orders continuing
// from nextOrder. Orders are never reused.
func BuildSyncPlan(projectID uint, existing []model.ProjectQuestion, desired []uint, overrides map[uint]model.OptionOverrideList, answered map[uint]bool, nextOrder int) SyncPlan {
	plan := SyncPlan{
		Updates: make(map[uint]model.OptionOverrideList),
		Result: SyncResult{
			Added:    []uint{},
			Updated:  []uint{},
			Removed:  []uint{},
			Retained: []uint{},
		},
	}
	byMaster := make(map[uint]*model.ProjectQuestion, len(existing))
	for i := range existing {
		byMaster[existing[i].MasterQuestionID] = &existing[i]
	}
	desiredSet := make(map[uint]bool, len(desired))
	for _, id := range desired {
		desiredSet[id] = true
	}

	for i := range existing {
		pq := &existing[i]
		if desiredSet[pq.MasterQuestionID] {
			continue
		}
		plan.RemoveIDs = append(plan.RemoveIDs, pq.ID)
		if answered[pq.ID] {
			plan.Result.Retained = append(plan.Result.Retained, pq.MasterQuestionID)
		} else {
			plan.Result.Removed = append(plan.Result.Removed, pq.MasterQuestionID)
		}
	}

	order := nextOrder
	for _, masterID := range desired {
		override := overrides[masterID]
		if pq, ok := byMaster[masterID]; ok {
			plan.Updates[pq.ID] = override
			if len(override) > 0 {
				plan.Result.Updated = append(plan.Result.Updated, masterID)
			}
			continue
		}
		plan.Adds = append(plan.Adds, model.ProjectQuestion{
			ProjectID:        projectID,
			MasterQuestionID: masterID,
			QuestionOrder:    order,
			CustomOptions:    override,
		})
		plan.Result.Added = append(plan.Result.Added, masterID)
		order++
	}

	plan.Result.Selected = len(desired)
	return plan
}

// SyncQuestions runs the full reconciliation for one project: sanitize the
// input, plan the delta, and commit it atomically.
func (s *QuestionSetService) SyncQuestions(projectID uint, req *SyncQuestionsRequest) (*SyncResult, error) {
	ids, rejected := ParseQuestionIDs(req.QuestionIDs)

	// Ids not present in the bank are dropped like malformed ones.
	known, err := s.questionRepo.ExistingIDs(ids)
	if err != nil {
		return nil, err
	}
	desired := make([]uint, 0, len(ids))
	for _, id := range ids {
		if known[id] {
			desired = append(desired, id)
		} else {
			rejected = append(rejected, strconv.FormatUint(uint64(id), 10))
		}
	}

	overrides := make(map[uint]model.OptionOverrideList, len(req.Overrides))
	for key, list := range req.Overrides {
		n, err := strconv.ParseUint(key, 10, 32)
		if err != nil {
			continue
		}
		overrides[uint(n)] = list
	}

	existing, err := s.pqRepo.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	answered, err := s.pqRepo.AnsweredProjectQuestionIDs(projectID)
	if err != nil {
		return nil, err
	}
	maxOrder, err := s.pqRepo.MaxOrder(projectID)
	if err != nil {
		return nil, err
	}

	plan := BuildSyncPlan(projectID, existing, desired, overrides, answered, maxOrder+1)
	if err := s.pqRepo.ApplySelection(plan.Adds, plan.Updates, plan.RemoveIDs); err != nil {
		return nil, err
	}
	plan.Result.Rejected = rejected
	return &plan.Result, nil
}

type AddProjectQuestionRequest struct {
	MasterQuestionID uint `json:"master_question_id" binding:"required"`

	CustomText    *string                  `json:"custom_text"`
	CustomOptions model.OptionOverrideList `json:"custom_options"`
	IsBreakout    bool                     `json:"is_breakout"`
}

// AddQuestion links one bank question to the project at the next order slot.
func (s *QuestionSetService) AddQuestion(projectID uint, req *AddProjectQuestionRequest) (*model.ProjectQuestion, error) {
	if _, err := s.questionRepo.FindByID(req.MasterQuestionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestionNotFound
		}
		return nil, err
	}
	pq := &model.ProjectQuestion{
		ProjectID:        projectID,
		MasterQuestionID: req.MasterQuestionID,
		CustomText:       req.CustomText,
		CustomOptions:    req.CustomOptions,
		IsBreakout:       req.IsBreakout,
	}
	if err := s.pqRepo.CreateProjectQuestion(pq); err != nil {
		return nil, err
	}
	return pq, nil
}

type AddCustomQuestionRequest struct {
	QuestionText string `json:"question_text" binding:"required"`
	QuestionType string `json:"question_type" binding:"required,oneof=multiple_choice likert_5 yes_no open_text multi_select"`

	LikertLowLabel  *string `json:"likert_low_label"`
	LikertHighLabel *string `json:"likert_high_label"`

	IsBreakout bool `json:"is_breakout"`

	ResponseOptions []OptionInput `json:"response_options"`
}

// AddCustomQuestion creates a project-only question sharing the same order
// counter as bank-linked ones.
func (s *QuestionSetService) AddCustomQuestion(projectID uint, req *AddCustomQuestionRequest) (*model.CustomQuestion, error) {
	cq := &model.CustomQuestion{
		ProjectID:       projectID,
		QuestionText:    req.QuestionText,
		QuestionType:    req.QuestionType,
		LikertLowLabel:  req.LikertLowLabel,
		LikertHighLabel: req.LikertHighLabel,
		IsBreakout:      req.IsBreakout,
	}
	for i, opt := range req.ResponseOptions {
		cq.ResponseOptions = append(cq.ResponseOptions, model.CustomResponseOption{
			OptionText:   opt.OptionText,
			OptionCode:   opt.OptionCode,
			NumericValue: opt.NumericValue,
			DisplayOrder: i + 1,
		})
	}
	if err := s.pqRepo.CreateCustomQuestion(cq); err != nil {
		return nil, err
	}
	return cq, nil
}

// RenderedOption is one answer choice as presented to a respondent, either
// from the bank definition or synthesized from a project override.
type RenderedOption struct {
	OptionText   string   `json:"option_text"`
	OptionCode   *string  `json:"option_code,omitempty"`
	NumericValue *float64 `json:"numeric_value,omitempty"`
	DisplayOrder int      `json:"display_order"`
}

// RenderedQuestion is the merged survey view of one question, bank-linked or
// custom, with project overrides already applied.
type RenderedQuestion struct {
	ID     uint   `json:"id"`
	Source string `json:"source"` // "bank" or "custom"

	QuestionText  string `json:"question_text"`
	QuestionType  string `json:"question_type"`
	QuestionOrder int    `json:"question_order"`

	Category    *string `json:"category,omitempty"`
	Subcategory *string `json:"subcategory,omitempty"`

	LikertLowLabel  *string `json:"likert_low_label,omitempty"`
	LikertHighLabel *string `json:"likert_high_label,omitempty"`

	IsBreakout bool `json:"is_breakout"`

	ResponseOptions []RenderedOption `json:"response_options"`
}

// RenderQuestion resolves one bank-linked question against its project
// overrides. Override options replace the bank options entirely and carry no
// numeric semantics.
func RenderQuestion(pq *model.ProjectQuestion) RenderedQuestion {
	mq := pq.MasterQuestion
	rq := RenderedQuestion{
		ID:            pq.ID,
		Source:        "bank",
		QuestionOrder: pq.QuestionOrder,
		IsBreakout:    pq.IsBreakout,
	}
	if mq != nil {
		rq.QuestionText = mq.QuestionText
		rq.QuestionType = mq.QuestionType
		rq.Category = &mq.Category
		rq.Subcategory = mq.Subcategory
		rq.LikertLowLabel = mq.LikertLowLabel
		rq.LikertHighLabel = mq.LikertHighLabel
	}
	if pq.CustomText != nil && *pq.CustomText != "" {
		rq.QuestionText = *pq.CustomText
	}
	if len(pq.CustomOptions) > 0 {
		for i, o := range pq.CustomOptions {
			code := o.Code
			rq.ResponseOptions = append(rq.ResponseOptions, RenderedOption{
				OptionText:   o.Text,
				OptionCode:   &code,
				DisplayOrder: i + 1,
			})
		}
	} else if mq != nil {
		for _, o := range mq.ResponseOptions {
			rq.ResponseOptions = append(rq.ResponseOptions, RenderedOption{
				OptionText:   o.OptionText,
				OptionCode:   o.OptionCode,
				NumericValue: o.NumericValue,
				DisplayOrder: o.DisplayOrder,
			})
		}
	}
	return rq
}

func renderCustomQuestion(cq *model.CustomQuestion) RenderedQuestion {
	rq := RenderedQuestion{
		ID:              cq.ID,
		Source:          "custom",
		QuestionText:    cq.QuestionText,
		QuestionType:    cq.QuestionType,
		QuestionOrder:   cq.QuestionOrder,
		LikertLowLabel:  cq.LikertLowLabel,
		LikertHighLabel: cq.LikertHighLabel,
		IsBreakout:      cq.IsBreakout,
	}
	for _, o := range cq.ResponseOptions {
		rq.ResponseOptions = append(rq.ResponseOptions, RenderedOption{
			OptionText:   o.OptionText,
			OptionCode:   o.OptionCode,
			NumericValue: o.NumericValue,
			DisplayOrder: o.DisplayOrder,
		})
	}
	return rq
}

// ListRendered returns the project's live question set, bank-linked and
// custom merged and sorted by order. Retired links are skipped; their answers
// surface only in results.
func (s *QuestionSetService) ListRendered(projectID uint) ([]RenderedQuestion, error) {
	pqs, err := s.pqRepo.ListByProject(projectID)
	if err != nil {
		return nil, err
	}
	cqs, err := s.pqRepo.ListCustomByProject(projectID)
	if err != nil {
		return nil, err
	}
	rendered := make([]RenderedQuestion, 0, len(pqs)+len(cqs))
	for i := range pqs {
		if pqs[i].IsRetired {
			continue
		}
		rendered = append(rendered, RenderQuestion(&pqs[i]))
	}
	for i := range cqs {
		rendered = append(rendered, renderCustomQuestion(&cqs[i]))
	}
	sort.Slice(rendered, func(i, j int) bool {
		return rendered[i].QuestionOrder < rendered[j].QuestionOrder
	})
	return rendered, nil
}

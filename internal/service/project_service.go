package service

import (
	"errors"
	"time"

	"swingshift_backend/internal/model"
	"swingshift_backend/internal/repository"
	"swingshift_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type ProjectService struct {
	projectRepo *repository.ProjectRepository
}

func NewProjectService(projectRepo *repository.ProjectRepository) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

type CreateProjectRequest struct {
	ProjectName string `json:"project_name" binding:"required"`
	CompanyName string `json:"company_name" binding:"required"`

	ClientPassword *string `json:"client_password"`

	IsAnonymous      *bool `json:"is_anonymous"`
	ShowProgress     *bool `json:"show_progress"`
	RandomizeOptions *bool `json:"randomize_options"`

	EmployeeIDLabel   *string `json:"employee_id_label"`
	RequireEmployeeID *bool   `json:"require_employee_id"`
}

type UpdateProjectRequest struct {
	ProjectName *string `json:"project_name"`
	CompanyName *string `json:"company_name"`
	Status      *string `json:"status" binding:"omitempty,oneof=draft active closed completed"`

	ClientPassword *string `json:"client_password"`

	IsAnonymous      *bool `json:"is_anonymous"`
	ShowProgress     *bool `json:"show_progress"`
	RandomizeOptions *bool `json:"randomize_options"`

	EmployeeIDLabel   *string `json:"employee_id_label"`
	RequireEmployeeID *bool   `json:"require_employee_id"`
}

// ProjectSummary decorates a project with its live counts for listings.
type ProjectSummary struct {
	model.Project
	QuestionCount     int64 `json:"question_count"`
	ResponseCount     int64 `json:"response_count"`
	CompleteResponses int64 `json:"complete_responses"`
	ScheduleCount     int64 `json:"schedule_count"`
}

func (s *ProjectService) CreateProject(req *CreateProjectRequest) (*model.Project, error) {
	p := &model.Project{
		ProjectName:     req.ProjectName,
		CompanyName:     req.CompanyName,
		Status:          model.StatusDraft,
		IsAnonymous:     true,
		ShowProgress:    true,
		EmployeeIDLabel: "Employee Number",
	}
	if req.IsAnonymous != nil {
		p.IsAnonymous = *req.IsAnonymous
	}
	if req.ShowProgress != nil {
		p.ShowProgress = *req.ShowProgress
	}
	if req.RandomizeOptions != nil {
		p.RandomizeOptions = *req.RandomizeOptions
	}
	if req.EmployeeIDLabel != nil {
		p.EmployeeIDLabel = *req.EmployeeIDLabel
	}
	if req.RequireEmployeeID != nil {
		p.RequireEmployeeID = *req.RequireEmployeeID
	}
	if req.ClientPassword != nil && *req.ClientPassword != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.ClientPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashed := string(hash)
		p.ClientPassword = &hashed
	}
	if err := s.projectRepo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProjectService) GetProject(id uint) (*model.Project, error) {
	p, err := s.projectRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrProjectNotFound
	}
	return p, err
}

func (s *ProjectService) GetProjectByAccessCode(code string) (*model.Project, error) {
	p, err := s.projectRepo.FindByAccessCode(code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrProjectNotFound
	}
	return p, err
}

func (s *ProjectService) ListProjects() ([]ProjectSummary, error) {
	projects, err := s.projectRepo.List()
	if err != nil {
		return nil, err
	}
	summaries := make([]ProjectSummary, 0, len(projects))
	for _, p := range projects {
		total, complete, err := s.projectRepo.ResponseCounts(p.ID)
		if err != nil {
			return nil, err
		}
		questions, err := s.projectRepo.QuestionCount(p.ID)
		if err != nil {
			return nil, err
		}
		schedules, err := s.projectRepo.ScheduleCount(p.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, ProjectSummary{
			Project:           p,
			QuestionCount:     questions,
			ResponseCount:     total,
			CompleteResponses: complete,
			ScheduleCount:     schedules,
		})
	}
	return summaries, nil
}

func (s *ProjectService) UpdateProject(id uint, req *UpdateProjectRequest) (*model.Project, error) {
	p, err := s.GetProject(id)
	if err != nil {
		return nil, err
	}
	if req.ProjectName != nil {
		p.ProjectName = *req.ProjectName
	}
	if req.CompanyName != nil {
		p.CompanyName = *req.CompanyName
	}
	if req.Status != nil {
		ApplyStatus(p, *req.Status, time.Now().UTC())
	}
	if req.IsAnonymous != nil {
		p.IsAnonymous = *req.IsAnonymous
	}
	if req.ShowProgress != nil {
		p.ShowProgress = *req.ShowProgress
	}
	if req.RandomizeOptions != nil {
		p.RandomizeOptions = *req.RandomizeOptions
	}
	if req.EmployeeIDLabel != nil {
		p.EmployeeIDLabel = *req.EmployeeIDLabel
	}
	if req.RequireEmployeeID != nil {
		p.RequireEmployeeID = *req.RequireEmployeeID
	}
	if req.ClientPassword != nil {
		if *req.ClientPassword == "" {
			p.ClientPassword = nil
		} else {
			hash, err := bcrypt.GenerateFromPassword([]byte(*req.ClientPassword), bcrypt.DefaultCost)
			if err != nil {
				return nil, err
			}
			hashed := string(hash)
			p.ClientPassword = &hashed
		}
	}
	if err := s.projectRepo.Update(p); err != nil {
		return nil, err
	}
	return p, nil
}

// ApplyStatus transitions a project and records the first time it opened and
// the first time it closed. Re-entering a state never overwrites the original
// timestamp.
func ApplyStatus(p *model.Project, status string, now time.Time) {
	p.Status = status
	switch status {
	case model.StatusActive:
		if p.OpenedAt == nil {
			t := now
			p.OpenedAt = &t
		}
	case model.StatusClosed, model.StatusCompleted:
		if p.ClosedAt == nil {
			t := now
			p.ClosedAt = &t
		}
	}
}

// VerifyPortalPassword checks client portal access for a project. Projects
// without a password are open to anyone holding the access code.
func (s *ProjectService) VerifyPortalPassword(p *model.Project, password string) error {
	if p.ClientPassword == nil || *p.ClientPassword == "" {
		return nil
	}
	if password == "" {
		return util.ErrPortalPasswordRequired
	}
	if bcrypt.CompareHashAndPassword([]byte(*p.ClientPassword), []byte(password)) != nil {
		return util.ErrPortalPasswordInvalid
	}
	return nil
}

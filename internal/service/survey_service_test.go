package service

import (
	"testing"
	"time"

	"swingshift_backend/internal/model"
	"swingshift_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubResponseStore struct {
	project   *model.Project
	responses map[string]*model.SurveyResponse
	answers   []*model.ResponseAnswer
	ratings   []*model.ScheduleRating

	nextID uint
}

func newStubStore(project *model.Project) *stubResponseStore {
	return &stubResponseStore{
		project:   project,
		responses: make(map[string]*model.SurveyResponse),
		nextID:    100,
	}
}

func (s *stubResponseStore) ProjectByAccessCode(code string) (*model.Project, error) {
	if s.project != nil && s.project.AccessCode == code {
		return s.project, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubResponseStore) CreateResponse(resp *model.SurveyResponse) error {
	s.nextID++
	resp.ID = s.nextID
	if resp.ResponseCode == "" {
		resp.ResponseCode = "code-" + time.Now().Format("150405.000000000")
	}
	resp.StartedAt = time.Now().UTC()
	resp.LastActivity = resp.StartedAt
	s.responses[resp.ResponseCode] = resp
	return nil
}

func (s *stubResponseStore) ResponseByCode(projectID uint, code string) (*model.SurveyResponse, error) {
	if resp, ok := s.responses[code]; ok && resp.ProjectID == projectID {
		return resp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubResponseStore) SaveAnswer(resp *model.SurveyResponse, ans *model.ResponseAnswer) error {
	for _, existing := range s.answers {
		if existing.ResponseID != ans.ResponseID {
			continue
		}
		sameBank := existing.ProjectQuestionID != nil && ans.ProjectQuestionID != nil &&
			*existing.ProjectQuestionID == *ans.ProjectQuestionID
		sameCustom := existing.CustomQuestionID != nil && ans.CustomQuestionID != nil &&
			*existing.CustomQuestionID == *ans.CustomQuestionID
		if sameBank || sameCustom {
			existing.AnswerText = ans.AnswerText
			existing.AnswerCode = ans.AnswerCode
			existing.AnswerNumeric = ans.AnswerNumeric
			existing.AnswerMulti = ans.AnswerMulti
			*ans = *existing
			resp.LastActivity = time.Now().UTC()
			return nil
		}
	}
	s.nextID++
	ans.ID = s.nextID
	s.answers = append(s.answers, ans)
	resp.LastActivity = time.Now().UTC()
	return nil
}

func (s *stubResponseStore) CompleteResponse(resp *model.SurveyResponse) error {
	if resp.IsComplete {
		return nil
	}
	now := time.Now().UTC()
	resp.IsComplete = true
	resp.CompletedAt = &now
	return nil
}

func (s *stubResponseStore) SaveRating(rating *model.ScheduleRating) error {
	for _, existing := range s.ratings {
		if existing.ResponseID == rating.ResponseID && existing.ScheduleID == rating.ScheduleID {
			*existing = *rating
			return nil
		}
	}
	s.ratings = append(s.ratings, rating)
	return nil
}

func activeProjectStub() *model.Project {
	p := &model.Project{
		ProjectName: "Plant Survey",
		CompanyName: "Acme",
		AccessCode:  "ABCD1234",
		Status:      model.StatusActive,
	}
	p.ID = 1
	return p
}

func TestStartResponseRequiresActiveProject(t *testing.T) {
	project := activeProjectStub()
	project.Status = model.StatusDraft
	store := newStubStore(project)
	svc := NewSurveyService(store)

	_, err := svc.StartResponse("ABCD1234", "10.0.0.1", "test-agent")

	assert.ErrorIs(t, err, util.ErrSurveyNotActive)
	assert.Empty(t, store.responses)

	project.Status = model.StatusActive
	resp, err := svc.StartResponse("ABCD1234", "10.0.0.1", "test-agent")

	require.NoError(t, err)
	assert.NotEmpty(t, resp.ResponseCode)
	assert.Equal(t, project.ID, resp.ProjectID)
}

func TestStartResponseUnknownAccessCode(t *testing.T) {
	svc := NewSurveyService(newStubStore(activeProjectStub()))

	_, err := svc.StartResponse("WRONG", "", "")

	assert.ErrorIs(t, err, util.ErrProjectNotFound)
}

func TestStartResponseHashesNetworkAddress(t *testing.T) {
	store := newStubStore(activeProjectStub())
	svc := NewSurveyService(store)

	resp, err := svc.StartResponse("ABCD1234", "192.168.1.50", "agent")

	require.NoError(t, err)
	require.NotNil(t, resp.IPHash)
	assert.Len(t, *resp.IPHash, 16)
	assert.NotContains(t, *resp.IPHash, "192.168")
}

func TestSubmitAnswerUpsertsByQuestion(t *testing.T) {
	store := newStubStore(activeProjectStub())
	svc := NewSurveyService(store)

	resp, err := svc.StartResponse("ABCD1234", "", "")
	require.NoError(t, err)

	qID := uint(10)
	yes := "Yes"
	no := "No"

	_, err = svc.SubmitAnswer("ABCD1234", &SubmitAnswerRequest{
		ResponseCode:      resp.ResponseCode,
		ProjectQuestionID: &qID,
		AnswerText:        &yes,
	})
	require.NoError(t, err)

	_, err = svc.SubmitAnswer("ABCD1234", &SubmitAnswerRequest{
		ResponseCode:      resp.ResponseCode,
		ProjectQuestionID: &qID,
		AnswerText:        &no,
	})
	require.NoError(t, err)

	require.Len(t, store.answers, 1)
	assert.Equal(t, "No", *store.answers[0].AnswerText)
}

func TestSubmitAnswerRequiresExactlyOneTarget(t *testing.T) {
	store := newStubStore(activeProjectStub())
	svc := NewSurveyService(store)

	resp, err := svc.StartResponse("ABCD1234", "", "")
	require.NoError(t, err)

	_, err = svc.SubmitAnswer("ABCD1234", &SubmitAnswerRequest{ResponseCode: resp.ResponseCode})
	assert.ErrorIs(t, err, util.ErrAnswerTargetAmbiguous)

	pqID := uint(10)
	cqID := uint(20)
	_, err = svc.SubmitAnswer("ABCD1234", &SubmitAnswerRequest{
		ResponseCode:      resp.ResponseCode,
		ProjectQuestionID: &pqID,
		CustomQuestionID:  &cqID,
	})
	assert.ErrorIs(t, err, util.ErrAnswerTargetAmbiguous)
}

func TestSubmitAnswerUnknownResponseCode(t *testing.T) {
	svc := NewSurveyService(newStubStore(activeProjectStub()))
	qID := uint(10)

	_, err := svc.SubmitAnswer("ABCD1234", &SubmitAnswerRequest{
		ResponseCode:      "missing",
		ProjectQuestionID: &qID,
	})

	assert.ErrorIs(t, err, util.ErrResponseNotFound)
}

func TestCompleteResponseIsIdempotent(t *testing.T) {
	store := newStubStore(activeProjectStub())
	svc := NewSurveyService(store)

	resp, err := svc.StartResponse("ABCD1234", "", "")
	require.NoError(t, err)

	first, err := svc.CompleteResponse("ABCD1234", resp.ResponseCode)
	require.NoError(t, err)
	assert.True(t, first.IsComplete)
	require.NotNil(t, first.CompletedAt)
	completedAt := *first.CompletedAt

	second, err := svc.CompleteResponse("ABCD1234", resp.ResponseCode)
	require.NoError(t, err)
	assert.True(t, second.IsComplete)
	assert.Equal(t, completedAt, *second.CompletedAt)
}

func TestSubmitAnswerRejectedAfterCompletion(t *testing.T) {
	store := newStubStore(activeProjectStub())
	svc := NewSurveyService(store)

	resp, err := svc.StartResponse("ABCD1234", "", "")
	require.NoError(t, err)

	_, err = svc.CompleteResponse("ABCD1234", resp.ResponseCode)
	require.NoError(t, err)

	qID := uint(10)
	_, err = svc.SubmitAnswer("ABCD1234", &SubmitAnswerRequest{
		ResponseCode:      resp.ResponseCode,
		ProjectQuestionID: &qID,
	})

	assert.ErrorIs(t, err, util.ErrResponseComplete)
}

func TestRateScheduleUpserts(t *testing.T) {
	store := newStubStore(activeProjectStub())
	svc := NewSurveyService(store)

	resp, err := svc.StartResponse("ABCD1234", "", "")
	require.NoError(t, err)

	three := 3
	five := 5
	_, err = svc.RateSchedule("ABCD1234", &RateScheduleRequest{
		ResponseCode: resp.ResponseCode,
		ScheduleID:   7,
		Rating:       &three,
	})
	require.NoError(t, err)

	_, err = svc.RateSchedule("ABCD1234", &RateScheduleRequest{
		ResponseCode: resp.ResponseCode,
		ScheduleID:   7,
		Rating:       &five,
		VideoWatched: true,
	})
	require.NoError(t, err)

	require.Len(t, store.ratings, 1)
	assert.Equal(t, 5, *store.ratings[0].Rating)
	assert.True(t, store.ratings[0].VideoWatched)
}

func TestHashIPIsStableAndShort(t *testing.T) {
	a := HashIP("10.1.2.3")
	b := HashIP("10.1.2.3")
	c := HashIP("10.1.2.4")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 16)
}

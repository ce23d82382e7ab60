package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"swingshift_backend/internal/model"
	"swingshift_backend/internal/repository"
	"swingshift_backend/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// VideoService manages the master schedule video library and per-project
// schedule videos, including direct uploads.
type VideoService struct {
	videoRepo *repository.VideoRepository
	storage   *StorageService
	logger    *zap.Logger
}

func NewVideoService(videoRepo *repository.VideoRepository, storage *StorageService, logger *zap.Logger) *VideoService {
	return &VideoService{videoRepo: videoRepo, storage: storage, logger: logger}
}

type CreateMasterVideoRequest struct {
	VideoName        string  `json:"video_name" binding:"required"`
	VideoDescription string  `json:"video_description" binding:"required"`
	YoutubeURL       string  `json:"youtube_url" binding:"required"`
	Tags             *string `json:"tags"`
	DurationMinutes  *int    `json:"duration_minutes"`
}

type UpdateMasterVideoRequest struct {
	VideoName        *string `json:"video_name"`
	VideoDescription *string `json:"video_description"`
	YoutubeURL       *string `json:"youtube_url"`
	Tags             *string `json:"tags"`
	DurationMinutes  *int    `json:"duration_minutes"`
	IsActive         *bool   `json:"is_active"`
}

// ExtractYouTubeID pulls the video id out of the common YouTube URL shapes
// (watch?v=, youtu.be/, embed/). Returns empty for anything else.
func ExtractYouTubeID(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	switch host {
	case "youtube.com", "m.youtube.com":
		if id := u.Query().Get("v"); id != "" {
			return id
		}
		if rest, ok := strings.CutPrefix(u.Path, "/embed/"); ok {
			return strings.SplitN(rest, "/", 2)[0]
		}
	case "youtu.be":
		return strings.TrimPrefix(strings.SplitN(u.Path, "?", 2)[0], "/")
	}
	return ""
}

func (s *VideoService) ListMasterVideos(activeOnly bool) ([]model.MasterVideo, error) {
	return s.videoRepo.ListMaster(activeOnly)
}

func (s *VideoService) CreateMasterVideo(req *CreateMasterVideoRequest) (*model.MasterVideo, error) {
	v := &model.MasterVideo{
		VideoName:        req.VideoName,
		VideoDescription: req.VideoDescription,
		YoutubeURL:       req.YoutubeURL,
		VideoID:          ExtractYouTubeID(req.YoutubeURL),
		Tags:             req.Tags,
		DurationMinutes:  req.DurationMinutes,
		IsActive:         true,
	}
	if err := s.videoRepo.CreateMaster(v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *VideoService) UpdateMasterVideo(id uint, req *UpdateMasterVideoRequest) (*model.MasterVideo, error) {
	v, err := s.videoRepo.FindMasterByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrVideoNotFound
	}
	if err != nil {
		return nil, err
	}
	if req.VideoName != nil {
		v.VideoName = *req.VideoName
	}
	if req.VideoDescription != nil {
		v.VideoDescription = *req.VideoDescription
	}
	if req.YoutubeURL != nil {
		v.YoutubeURL = *req.YoutubeURL
		v.VideoID = ExtractYouTubeID(*req.YoutubeURL)
	}
	if req.Tags != nil {
		v.Tags = req.Tags
	}
	if req.DurationMinutes != nil {
		v.DurationMinutes = req.DurationMinutes
	}
	if req.IsActive != nil {
		v.IsActive = *req.IsActive
	}
	if err := s.videoRepo.UpdateMaster(v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *VideoService) ListSchedules(projectID uint) ([]model.ScheduleVideo, error) {
	return s.videoRepo.ListSchedules(projectID)
}

// CopyFromMaster links master library entries into a project as schedule
// videos. Unknown ids are skipped rather than failing the batch.
func (s *VideoService) CopyFromMaster(projectID uint, masterVideoIDs []uint) ([]model.ScheduleVideo, error) {
	var copied []model.ScheduleVideo
	for _, id := range masterVideoIDs {
		mv, err := s.videoRepo.FindMasterByID(id)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("skipping unknown master video", zap.Uint("master_video_id", id))
			continue
		}
		if err != nil {
			return nil, err
		}
		sv := model.ScheduleVideo{
			ProjectID:     projectID,
			ScheduleName:  mv.VideoName,
			VideoFilename: fmt.Sprintf("youtube:%s", mv.VideoID),
			VideoURL:      &mv.YoutubeURL,
		}
		if mv.VideoDescription != "" {
			desc := mv.VideoDescription
			sv.ScheduleDescription = &desc
		}
		if mv.DurationMinutes != nil {
			seconds := *mv.DurationMinutes * 60
			sv.DurationSeconds = &seconds
		}
		if err := s.videoRepo.CreateSchedule(&sv); err != nil {
			return nil, err
		}
		copied = append(copied, sv)
	}
	return copied, nil
}

// UploadSchedule stores an uploaded video file, probes it for duration and
// size, and attaches it to the project.
func (s *VideoService) UploadSchedule(ctx context.Context, projectID uint, scheduleName, description, originalFilename string, file io.Reader, size int64, contentType string) (*model.ScheduleVideo, error) {
	ext := filepath.Ext(originalFilename)
	filename := fmt.Sprintf("schedules/%d/%s%s", projectID, uuid.New().String(), ext)

	// Spool to a temp file so ffprobe can read it regardless of provider.
	tmp, err := os.CreateTemp("", "schedule-upload-*"+ext)
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	written, err := io.Copy(tmp, file)
	if err != nil {
		return nil, err
	}

	videoURL, err := s.storage.UploadFile(ctx, filename, tmp.Name(), contentType)
	if err != nil {
		return nil, err
	}

	sv := &model.ScheduleVideo{
		ProjectID:     projectID,
		ScheduleName:  scheduleName,
		VideoFilename: filename,
		VideoURL:      &videoURL,
	}
	if description != "" {
		sv.ScheduleDescription = &description
	}
	if originalFilename != "" {
		sv.OriginalFilename = &originalFilename
	}

	info, err := util.ProbeVideo(tmp.Name())
	if err != nil {
		// Probe failure is not fatal; the video still plays.
		s.logger.Warn("video probe failed", zap.String("filename", filename), zap.Error(err))
		sv.FileSizeBytes = &written
	} else {
		sv.DurationSeconds = &info.DurationSeconds
		sv.FileSizeBytes = &info.SizeBytes
	}

	if err := s.videoRepo.CreateSchedule(sv); err != nil {
		return nil, err
	}
	return sv, nil
}

func (s *VideoService) DeleteSchedule(ctx context.Context, id uint) error {
	sv, err := s.videoRepo.FindScheduleByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return util.ErrVideoNotFound
	}
	if err != nil {
		return err
	}
	if !strings.HasPrefix(sv.VideoFilename, "youtube:") {
		if err := s.storage.Delete(ctx, sv.VideoFilename); err != nil {
			s.logger.Warn("failed to delete stored video", zap.String("filename", sv.VideoFilename), zap.Error(err))
		}
	}
	return s.videoRepo.DeleteSchedule(id)
}

// ScheduleRatingSummary aggregates one schedule's ratings.
type ScheduleRatingSummary struct {
	ScheduleID   uint     `json:"schedule_id"`
	RatingCount  int      `json:"rating_count"`
	AvgRating    *float64 `json:"avg_rating,omitempty"`
	AvgRank      *float64 `json:"avg_rank,omitempty"`
	WatchedCount int      `json:"watched_count"`
}

func (s *VideoService) RatingSummary(scheduleID uint) (*ScheduleRatingSummary, error) {
	ratings, err := s.videoRepo.ListRatings(scheduleID)
	if err != nil {
		return nil, err
	}
	summary := &ScheduleRatingSummary{ScheduleID: scheduleID, RatingCount: len(ratings)}
	var ratingSum, rankSum float64
	var ratingN, rankN int
	for _, r := range ratings {
		if r.Rating != nil {
			ratingSum += float64(*r.Rating)
			ratingN++
		}
		if r.Rank != nil {
			rankSum += float64(*r.Rank)
			rankN++
		}
		if r.VideoWatched {
			summary.WatchedCount++
		}
	}
	if ratingN > 0 {
		avg := ratingSum / float64(ratingN)
		summary.AvgRating = &avg
	}
	if rankN > 0 {
		avg := rankSum / float64(rankN)
		summary.AvgRank = &avg
	}
	return summary, nil
}

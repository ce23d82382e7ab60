package controller

import (
	"strconv"

	"swingshift_backend/internal/service"
	"swingshift_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type VideoController struct {
	VideoService   *service.VideoService
	ProjectService *service.ProjectService
}

func NewVideoController(videoService *service.VideoService, projectService *service.ProjectService) *VideoController {
	return &VideoController{VideoService: videoService, ProjectService: projectService}
}

// @Summary List master videos
// @Description Lists the reusable schedule video library
// @Tags videos
// @Produce json
// @Security ApiKeyAuth
// @Param all query bool false "Include inactive entries"
// @Success 200 {array} model.MasterVideo
// @Router /api/videos [get]
func (c *VideoController) ListMasterVideos(ctx *gin.Context) {
	videos, err := c.VideoService.ListMasterVideos(ctx.Query("all") != "true")
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, videos)
}

// @Summary Add a master video
// @Tags videos
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param video body service.CreateMasterVideoRequest true "Video definition"
// @Success 201 {object} model.MasterVideo
// @Failure 400 {object} util.ErrorResponse
// @Router /api/videos [post]
func (c *VideoController) CreateMasterVideo(ctx *gin.Context) {
	var req service.CreateMasterVideoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	video, err := c.VideoService.CreateMasterVideo(&req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, video)
}

// @Summary Update a master video
// @Tags videos
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Video ID"
// @Param video body service.UpdateMasterVideoRequest true "Fields to update"
// @Success 200 {object} model.MasterVideo
// @Failure 404 {object} util.ErrorResponse
// @Router /api/videos/{id} [put]
func (c *VideoController) UpdateMasterVideo(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid video id")
		return
	}
	var req service.UpdateMasterVideoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	video, err := c.VideoService.UpdateMasterVideo(uint(id), &req)
	if err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, video)
}

// @Summary List a project's schedule videos
// @Tags videos
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Project ID"
// @Success 200 {array} model.ScheduleVideo
// @Router /api/projects/{id}/schedules [get]
func (c *VideoController) ListSchedules(ctx *gin.Context) {
	id, ok := projectID(ctx)
	if !ok {
		return
	}
	schedules, err := c.VideoService.ListSchedules(id)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, schedules)
}

type CopyFromMasterRequest struct {
	MasterVideoIDs []uint `json:"master_video_ids" binding:"required"`
}

// @Summary Copy master videos into a project
// @Description Links library entries as project schedule videos; unknown ids are skipped
// @Tags videos
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Project ID"
// @Param videos body CopyFromMasterRequest true "Master video ids"
// @Success 201 {array} model.ScheduleVideo
// @Failure 404 {object} util.ErrorResponse
// @Router /api/projects/{id}/schedules/copy [post]
func (c *VideoController) CopyFromMaster(ctx *gin.Context) {
	id, ok := projectID(ctx)
	if !ok {
		return
	}
	if _, err := c.ProjectService.GetProject(id); err != nil {
		handleServiceError(ctx, err)
		return
	}
	var req CopyFromMasterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	copied, err := c.VideoService.CopyFromMaster(id, req.MasterVideoIDs)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, copied)
}

// @Summary Upload a schedule video
// @Description Multipart upload; the file is probed for duration and size
// @Tags videos
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Project ID"
// @Param schedule_name formData string true "Schedule name"
// @Param description formData string false "Schedule description"
// @Param video formData file true "Video file"
// @Success 201 {object} model.ScheduleVideo
// @Failure 400 {object} util.ErrorResponse
// @Router /api/projects/{id}/schedules/upload [post]
func (c *VideoController) UploadSchedule(ctx *gin.Context) {
	id, ok := projectID(ctx)
	if !ok {
		return
	}
	if _, err := c.ProjectService.GetProject(id); err != nil {
		handleServiceError(ctx, err)
		return
	}
	scheduleName := ctx.PostForm("schedule_name")
	if scheduleName == "" {
		util.BadRequest(ctx, "schedule_name is required")
		return
	}
	header, err := ctx.FormFile("video")
	if err != nil {
		util.BadRequest(ctx, "video file is required")
		return
	}
	file, err := header.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	sv, err := c.VideoService.UploadSchedule(ctx.Request.Context(), id, scheduleName, ctx.PostForm("description"),
		header.Filename, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, sv)
}

// @Summary Delete a schedule video
// @Tags videos
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Schedule ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} util.ErrorResponse
// @Router /api/schedules/{id} [delete]
func (c *VideoController) DeleteSchedule(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid schedule id")
		return
	}
	if err := c.VideoService.DeleteSchedule(ctx.Request.Context(), uint(id)); err != nil {
		handleServiceError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"status": "deleted"})
}

// @Summary Schedule rating summary
// @Tags videos
// @Produce json
// @Security ApiKeyAuth
// @Param id path int true "Schedule ID"
// @Success 200 {object} service.ScheduleRatingSummary
// @Router /api/schedules/{id}/ratings [get]
func (c *VideoController) RatingSummary(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid schedule id")
		return
	}
	summary, err := c.VideoService.RatingSummary(uint(id))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}

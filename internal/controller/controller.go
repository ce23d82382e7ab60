package controller

import (
	"errors"
	"net/http"

	"swingshift_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// handleServiceError maps service sentinels to HTTP statuses; anything
// unrecognized is logged and surfaced as a 500.
func handleServiceError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrProjectNotFound),
		errors.Is(err, util.ErrQuestionNotFound),
		errors.Is(err, util.ErrResponseNotFound),
		errors.Is(err, util.ErrVideoNotFound):
		util.Error(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, util.ErrSurveyNotActive),
		errors.Is(err, util.ErrResponseComplete),
		errors.Is(err, util.ErrAnswerTargetAmbiguous),
		errors.Is(err, util.ErrQuestionHasAnswers):
		util.Error(ctx, http.StatusBadRequest, err.Error())
	case errors.Is(err, util.ErrPortalPasswordRequired),
		errors.Is(err, util.ErrPortalPasswordInvalid):
		util.Error(ctx, http.StatusUnauthorized, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

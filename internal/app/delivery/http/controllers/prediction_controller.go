package controllers

import (
	"cancer-prediction-service/internal/app/contracts"
	"cancer-prediction-service/internal/pkg/constvars"
	"cancer-prediction-service/internal/pkg/dto/requests"
	"cancer-prediction-service/internal/pkg/exceptions"
	"cancer-prediction-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PredictionController struct {
	Log               *zap.Logger
	PredictionUsecase contracts.PredictionUsecase
}

func NewPredictionController(logger *zap.Logger, predictionUsecase contracts.PredictionUsecase) *PredictionController {
	return &PredictionController{
		Log:               logger,
		PredictionUsecase: predictionUsecase,
	}
}

func (ctrl *PredictionController) Estimate(w http.ResponseWriter, r *http.Request) {
	request := new(requests.EstimateRisk)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeEstimateRiskRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.ControllerTimeout*time.Second)
	defer cancel()

	response, err := ctrl.PredictionUsecase.Estimate(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.EstimateSuccessMessage, response)
}

func (ctrl *PredictionController) GenerateForSession(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionMissing(errors.New(constvars.ErrDevSessionMissingFromContext)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.ControllerTimeout*time.Second)
	defer cancel()

	response, err := ctrl.PredictionUsecase.GenerateForSession(ctx, session)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PredictionSuccessMessage, response)
}

package controllers

import (
	"cancer-prediction-service/internal/app/contracts"
	"cancer-prediction-service/internal/pkg/constvars"
	"cancer-prediction-service/internal/pkg/exceptions"
	"cancer-prediction-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type DashboardController struct {
	Log              *zap.Logger
	DashboardUsecase contracts.DashboardUsecase
}

func NewDashboardController(logger *zap.Logger, dashboardUsecase contracts.DashboardUsecase) *DashboardController {
	return &DashboardController{
		Log:              logger,
		DashboardUsecase: dashboardUsecase,
	}
}

func (ctrl *DashboardController) Home(w http.ResponseWriter, r *http.Request) {
	response := ctrl.DashboardUsecase.Home(r.Context(), utils.GetSessionFromContext(r.Context()))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetHomeSuccessMessage, response)
}

func (ctrl *DashboardController) PatientDashboard(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionMissing(errors.New(constvars.ErrDevSessionMissingFromContext)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.ControllerTimeout*time.Second)
	defer cancel()

	response, err := ctrl.DashboardUsecase.PatientDashboard(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDashboardSuccessMessage, response)
}

func (ctrl *DashboardController) DoctorDashboard(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionMissing(errors.New(constvars.ErrDevSessionMissingFromContext)))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.ControllerTimeout*time.Second)
	defer cancel()

	response, err := ctrl.DashboardUsecase.DoctorDashboard(ctx, session)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDashboardSuccessMessage, response)
}

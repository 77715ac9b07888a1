package controllers

import (
	"cancer-prediction-service/internal/app/contracts"
	"cancer-prediction-service/internal/pkg/constvars"
	"cancer-prediction-service/internal/pkg/dto/requests"
	"cancer-prediction-service/internal/pkg/exceptions"
	"cancer-prediction-service/internal/pkg/utils"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PatientCaseController struct {
	Log                *zap.Logger
	PatientCaseUsecase contracts.PatientCaseUsecase
}

func NewPatientCaseController(logger *zap.Logger, patientCaseUsecase contracts.PatientCaseUsecase) *PatientCaseController {
	return &PatientCaseController{
		Log:                logger,
		PatientCaseUsecase: patientCaseUsecase,
	}
}

func (ctrl *PatientCaseController) FindAll(w http.ResponseWriter, r *http.Request) {
	request := &requests.FindCases{
		Search: r.URL.Query().Get(constvars.QueryParamSearch),
		Status: r.URL.Query().Get(constvars.QueryParamStatus),
	}
	utils.SanitizeFindCasesRequest(request)

	err := utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidStatusFilter(err, request.Status))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.ControllerTimeout*time.Second)
	defer cancel()

	response, err := ctrl.PatientCaseUsecase.FindAll(ctx, request)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetCasesSuccessMessage, response)
}

func (ctrl *PatientCaseController) FindByID(w http.ResponseWriter, r *http.Request) {
	caseID := chi.URLParam(r, constvars.URLParamCaseID)

	ctx, cancel := context.WithTimeout(r.Context(), constvars.ControllerTimeout*time.Second)
	defer cancel()

	response, err := ctrl.PatientCaseUsecase.FindByID(ctx, caseID)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, fmt.Sprintf(constvars.GetCaseSuccessMessage, response.Name), response)
}

// Export accepts the same filter as FindAll in the body. An empty body exports
// every case.
func (ctrl *PatientCaseController) Export(w http.ResponseWriter, r *http.Request) {
	session := utils.GetSessionFromContext(r.Context())
	if session == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSessionMissing(errors.New(constvars.ErrDevSessionMissingFromContext)))
		return
	}

	request := new(requests.FindCases)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil && !errors.Is(err, io.EOF) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeFindCasesRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidStatusFilter(err, request.Status))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.ControllerTimeout*time.Second)
	defer cancel()

	response, err := ctrl.PatientCaseUsecase.Export(ctx, request, session.User.ID)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ExportCasesSuccessMessage, response)
}

package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/dashboarding"
	"github.com/vfg2006/campaign-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-metrics-api/pkg/log"
	"github.com/vfg2006/campaign-metrics-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("http: erro ao codificar resposta")
	}
}

// writeServiceError traduz os erros tipados dos casos de uso para o formato da API
func writeServiceError(w http.ResponseWriter, err error) {
	var campaignErr *campaigning.CampaignError
	if errors.As(err, &campaignErr) {
		var details any
		if campaignErr.RecordID != "" {
			details = map[string]string{"id": campaignErr.RecordID}
		}
		apiErrors.WriteError(w, campaignErr.Code, campaignErr.Error(), details)
		return
	}

	var dashboardErr *dashboarding.DashboardError
	if errors.As(err, &dashboardErr) {
		apiErrors.WriteError(w, dashboardErr.Code, dashboardErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
}

// companyFromRequest lê a empresa ativa das claims do token
func companyFromRequest(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok || claims.CompanyID == "" {
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Token sem empresa associada", nil)
		return nil, false
	}
	return claims, true
}

func decodeRecord(w http.ResponseWriter, r *http.Request) (domain.CampaignRecord, bool) {
	var record domain.CampaignRecord
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("http: corpo inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
		return record, false
	}
	return record, true
}

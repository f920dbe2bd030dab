package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/campaigning"
	"github.com/vfg2006/campaign-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-metrics-api/pkg/log"
	"github.com/vfg2006/campaign-metrics-api/pkg/middleware"
	"github.com/vfg2006/campaign-metrics-api/pkg/utils"
)

// GetDraft devolve um registro vazio do canal com os derivados zerados
func GetDraft(service campaigning.Campaigner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := httprouter.ParamsFromContext(r.Context()).ByName("channel")

		channel, ok := domain.ParseChannel(raw)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidChannel, "Canal inválido. Valores aceitos: google, instagram, facebook", nil)
			return
		}

		middleware.CountRecompute("draft")
		writeJSON(w, r, http.StatusOK, service.NewDraft(channel))
	})
}

// PreviewCampaign recalcula os derivados do corpo recebido sem gravar
func PreviewCampaign(service campaigning.Campaigner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		record, ok := decodeRecord(w, r)
		if !ok {
			return
		}

		middleware.CountRecompute("preview")
		writeJSON(w, r, http.StatusOK, service.Preview(record))
	})
}

func CreateCampaign(service campaigning.Campaigner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := companyFromRequest(w, r)
		if !ok {
			return
		}

		record, ok := decodeRecord(w, r)
		if !ok {
			return
		}

		view, err := service.Create(r.Context(), claims.CompanyID, record)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, view)
	})
}

func UpdateCampaign(service campaigning.Campaigner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := companyFromRequest(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		record, ok := decodeRecord(w, r)
		if !ok {
			return
		}

		view, err := service.Update(r.Context(), claims.CompanyID, id, record)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, view)
	})
}

func GetCampaign(service campaigning.Campaigner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := companyFromRequest(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		view, err := service.Get(r.Context(), claims.CompanyID, id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, view)
	})
}

// ListCampaigns aceita channel, start_date e end_date (yyyy-mm-dd) como filtros opcionais
func ListCampaigns(service campaigning.Campaigner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := companyFromRequest(w, r)
		if !ok {
			return
		}

		query := r.URL.Query()
		filters := domain.CampaignFilters{}

		if raw := query.Get("channel"); raw != "" {
			channel := domain.Channel(raw)
			if parsed, ok := domain.ParseChannel(raw); ok {
				channel = parsed
			}
			filters.Channel = &channel
		}

		for name, target := range map[string]**time.Time{
			"start_date": &filters.StartDate,
			"end_date":   &filters.EndDate,
		} {
			raw := query.Get(name)
			if raw == "" {
				continue
			}
			date, err := utils.ParseDate(raw)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidDate, "Data inválida. Use o formato yyyy-mm-dd", map[string]string{"param": name})
				return
			}
			*target = date
		}

		views, err := service.List(r.Context(), claims.CompanyID, filters)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		logger.WithField("records", len(views)).Info("campaigns: registros listados")

		writeJSON(w, r, http.StatusOK, views)
	})
}

func DeleteCampaign(service campaigning.Campaigner) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := companyFromRequest(w, r)
		if !ok {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.Delete(r.Context(), claims.CompanyID, id); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

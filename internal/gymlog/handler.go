package gymlog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/2beens/gymprogress/internal/gymlog/convo"
	"github.com/2beens/gymprogress/internal/gymlog/progress"
	"github.com/2beens/gymprogress/internal/gymlog/records"
	"github.com/2beens/gymprogress/internal/telemetry/metrics"
	"github.com/2beens/gymprogress/internal/telemetry/tracing"
	"github.com/2beens/gymprogress/pkg"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=gymlog_test

const bestsCacheTTLSeconds = 600

type gymlogRepo interface {
	ListAll(ctx context.Context, userID int64) ([]records.Record, error)
	ListRecent(ctx context.Context, userID int64, limit int) ([]records.Record, error)
	DeleteByID(ctx context.Context, id int) (*records.Record, error)
	DeleteAllForUser(ctx context.Context, userID int64) (int64, error)
}

type MessageRequest struct {
	UserID int64  `json:"userId"`
	Text   string `json:"text"`
}

type ListResponse struct {
	Records []records.Record `json:"records"`
	Total   int              `json:"total"`
}

type DeleteRecordResponse struct {
	DeletedID int             `json:"deletedId"`
	Record    *records.Record `json:"record,omitempty"`
	Message   string          `json:"message,omitempty"`
}

type ClearAllResponse struct {
	Deleted int64 `json:"deleted"`
}

type NoDataResponse struct {
	Message string `json:"message"`
}

// Handler is the HTTP seam towards the bot transport: messages come in as
// (userId, text), responses go out as text plus the next prompt kind. The
// transport owns keyboards and message delivery.
type Handler struct {
	workflow   *convo.Workflow
	sessions   *convo.SessionStore
	repo       gymlogRepo
	analyzer   *records.Analyzer
	preparer   *progress.Preparer
	renderer   progress.Renderer
	bestsCache *freecache.Cache
	metrics    *metrics.Manager
}

func NewHandler(
	workflow *convo.Workflow,
	sessions *convo.SessionStore,
	repo gymlogRepo,
	analyzer *records.Analyzer,
	preparer *progress.Preparer,
	renderer progress.Renderer,
	bestsCache *freecache.Cache,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		workflow:   workflow,
		sessions:   sessions,
		repo:       repo,
		analyzer:   analyzer,
		preparer:   preparer,
		renderer:   renderer,
		bestsCache: bestsCache,
		metrics:    metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/gymlog/message", handler.HandleMessage).Methods("POST", "OPTIONS").Name("gymlog-message")
	r.HandleFunc("/gymlog/user/{id}/records", handler.HandleListRecords).Methods("GET", "OPTIONS").Name("gymlog-records")
	r.HandleFunc("/gymlog/user/{id}/records/recent", handler.HandleListRecent).Methods("GET", "OPTIONS").Name("gymlog-recent")
	r.HandleFunc("/gymlog/user/{id}/records", handler.HandleClearAll).Methods("DELETE", "OPTIONS").Name("gymlog-clear-all")
	r.HandleFunc("/gymlog/user/{id}/bests", handler.HandleBests).Methods("GET", "OPTIONS").Name("gymlog-bests")
	r.HandleFunc("/gymlog/user/{id}/progress/{period}", handler.HandleProgress).Methods("GET", "OPTIONS").Name("gymlog-progress")
	r.HandleFunc("/gymlog/record/{id}", handler.HandleDeleteRecord).Methods("DELETE", "OPTIONS").Name("gymlog-delete-record")
}

// HandleMessage feeds one inbound transport message through the workflow.
// Workflow errors are already resolved into user-facing outcomes, so the
// response is always 200 with a reply the transport can show as-is.
func (handler *Handler) HandleMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymlog.message")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var req MessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("handle message, unmarshal json params: %s", err)
		http.Error(w, "invalid message payload", http.StatusBadRequest)
		return
	}
	if req.UserID == 0 {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return
	}

	outcome, err := handler.workflow.HandleMessage(ctx, req.UserID, req.Text)
	handler.metrics.CounterMessages.Inc()
	if err != nil {
		// the outcome already carries the user-facing guidance
		log.Debugf("message of user %d resolved with: %s", req.UserID, err)
	}
	if outcome.Record != nil {
		handler.metrics.CounterRecordsAdded.Inc()
		handler.invalidateBests(req.UserID)
	}
	handler.metrics.GaugeActiveSessions.Set(float64(handler.sessions.Len()))

	outcomeJson, err := json.Marshal(outcome)
	if err != nil {
		log.Errorf("failed to marshal message outcome: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, outcomeJson)
}

func (handler *Handler) HandleListRecords(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymlog.list")
	defer span.End()

	userID, err := userIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	recs, err := handler.repo.ListAll(ctx, userID)
	if err != nil {
		log.Errorf("list records for user %d: %s", userID, err)
		http.Error(w, "failed to get records", http.StatusInternalServerError)
		return
	}

	handler.writeList(w, recs)
}

func (handler *Handler) HandleListRecent(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymlog.listrecent")
	defer span.End()

	userID, err := userIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	limit := 10
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 1 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
	}

	recs, err := handler.repo.ListRecent(ctx, userID, limit)
	if err != nil {
		log.Errorf("list recent records for user %d: %s", userID, err)
		http.Error(w, "failed to get records", http.StatusInternalServerError)
		return
	}

	handler.writeList(w, recs)
}

func (handler *Handler) HandleBests(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymlog.bests")
	defer span.End()

	userID, err := userIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	cacheKey := bestsCacheKey(userID)
	if cached, err := handler.bestsCache.Get(cacheKey); err == nil {
		pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, cached)
		return
	}

	bests, err := handler.analyzer.PersonalBests(ctx, userID)
	if err != nil && !errors.Is(err, records.ErrNoRecords) {
		log.Errorf("personal bests for user %d: %s", userID, err)
		http.Error(w, "failed to get personal bests", http.StatusInternalServerError)
		return
	} else if errors.Is(err, records.ErrNoRecords) {
		noDataJson, err := json.Marshal(NoDataResponse{Message: "no records yet"})
		if err != nil {
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, noDataJson)
		return
	}

	bestsJson, err := json.Marshal(bests)
	if err != nil {
		log.Errorf("failed to marshal personal bests: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	if err := handler.bestsCache.Set(cacheKey, bestsJson, bestsCacheTTLSeconds); err != nil {
		log.Tracef("failed to cache personal bests of user %d: %s", userID, err)
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, bestsJson)
}

func (handler *Handler) HandleProgress(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymlog.progress")
	defer span.End()

	userID, err := userIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	period := progress.Period(mux.Vars(r)["period"])
	if !period.IsValid() {
		http.Error(w, "error, unknown period", http.StatusBadRequest)
		return
	}

	spec, err := handler.preparer.BuildChart(ctx, userID, period)
	if errors.Is(err, progress.ErrEmptyDataset) {
		noDataJson, err := json.Marshal(NoDataResponse{Message: "no data for the selected period"})
		if err != nil {
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, noDataJson)
		return
	}
	if err != nil {
		log.Errorf("build chart for user %d: %s", userID, err)
		http.Error(w, "failed to build progress chart", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterChartsBuilt.Inc()

	// without a renderer configured the raw chart spec is served instead
	if handler.renderer == nil {
		specJson, err := json.Marshal(spec)
		if err != nil {
			log.Errorf("failed to marshal chart spec: %s", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, specJson)
		return
	}

	imageBytes, err := handler.renderer.Render(ctx, spec)
	if err != nil {
		log.Errorf("render chart for user %d: %s", userID, err)
		http.Error(w, "failed to render progress chart", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, "image/png", imageBytes)
}

func (handler *Handler) HandleDeleteRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymlog.deleterecord")
	defer span.End()

	idStr := mux.Vars(r)["id"]
	id, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	removed, err := handler.repo.DeleteByID(ctx, id)
	if err != nil && !errors.Is(err, records.ErrRecordNotFound) {
		log.Errorf("failed to delete record %d: %s", id, err)
		http.Error(w, "record not deleted", http.StatusInternalServerError)
		return
	} else if errors.Is(err, records.ErrRecordNotFound) {
		// double/racing deletes degrade to an informational response
		deleteRespJson, err := json.Marshal(DeleteRecordResponse{
			DeletedID: id,
			Message:   "record already deleted",
		})
		if err != nil {
			http.Error(w, "internal server error", http.StatusInternalServerError)
			return
		}
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, deleteRespJson, http.StatusNotFound)
		return
	}

	handler.metrics.CounterRecordsDeleted.Inc()
	handler.invalidateBests(removed.UserID)

	deleteRespJson, err := json.Marshal(DeleteRecordResponse{
		DeletedID: id,
		Record:    removed,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func (handler *Handler) HandleClearAll(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.gymlog.clearall")
	defer span.End()

	userID, err := userIDFromRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	deleted, err := handler.repo.DeleteAllForUser(ctx, userID)
	if err != nil {
		log.Errorf("failed to delete records of user %d: %s", userID, err)
		http.Error(w, "records not deleted", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterRecordsDeleted.Add(float64(deleted))
	handler.invalidateBests(userID)

	clearAllJson, err := json.Marshal(ClearAllResponse{Deleted: deleted})
	if err != nil {
		log.Errorf("failed to marshal clear all response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(clearAllJson))
}

func (handler *Handler) writeList(w http.ResponseWriter, recs []records.Record) {
	listJson, err := json.Marshal(ListResponse{
		Records: recs,
		Total:   len(recs),
	})
	if err != nil {
		log.Errorf("marshal records error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, listJson)
}

func (handler *Handler) invalidateBests(userID int64) {
	handler.bestsCache.Del(bestsCacheKey(userID))
}

func bestsCacheKey(userID int64) []byte {
	return []byte(fmt.Sprintf("bests-%d", userID))
}

func userIDFromRequest(r *http.Request) (int64, error) {
	idStr := mux.Vars(r)["id"]
	if idStr == "" {
		return 0, errors.New("error, user id empty")
	}
	userID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, errors.New("error, user id NaN")
	}
	return userID, nil
}

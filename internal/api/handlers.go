package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	errorvalues "github.com/astralune/trackstar/internal/error_values"
	"github.com/astralune/trackstar/internal/service"
	"github.com/astralune/trackstar/pkg/dateutil"
	"github.com/astralune/trackstar/pkg/entity"
	"github.com/astralune/trackstar/pkg/httputil"
)

type GoogleSignInRequest struct {
	Credential string `json:"credential"`
}

type UpdateDayRequest struct {
	PlannedActivity *string   `json:"plannedActivity"`
	IsRestDay       *bool     `json:"isRestDay"`
	Status          *string   `json:"status"`
	Extras          *[]string `json:"extras"`
}

type UpdateProfileRequest struct {
	Name     *string        `json:"name"`
	Picture  *string        `json:"picture"`
	Settings map[string]any `json:"settings"`
}

func (s *Server) GetConfig(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"googleClientId": s.googleClientID,
	})
}

func (s *Server) GoogleSignIn(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req GoogleSignInRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.Credential == "" {
		logger.Error("sign-in error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	profile, err := s.verifier.Verify(ctx, req.Credential)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidToken) {
			logger.Error("sign-in error: credential rejected")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "invalid credential", nil)
			return
		}
		logger.Error("sign-in error: verifier error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error verifying credential", nil)
		return
	}
	user, err := s.userService.EnsureUser(ctx, profile)
	if err != nil {
		logger.Error("sign-in error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during sign-in", nil)
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("sign-in error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  user,
	})
	logger.Info("successful sign-in")
}

func (s *Server) GetWeek(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get week error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	anchor := time.Now()
	if dateQuery := r.URL.Query().Get("date"); dateQuery != "" {
		anchor, err = dateutil.ParseDayID(dateQuery)
		if err != nil {
			logger.Error("get week error: invalid date query parameter")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid date query parameter", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	week, err := s.daysService.GetWeek(ctx, uid, anchor)
	if err != nil {
		logger.Error("get week error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting week", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, week)
	logger.Info("week provided")
}

func (s *Server) UpdateDay(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update day error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	dayID := chi.URLParam(r, "id")
	if _, err := dateutil.ParseDayID(dayID); err != nil {
		logger.Error("update day error: invalid day id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid day id in path value", nil)
		return
	}
	var req UpdateDayRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update day error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	patch := service.DayPatch{
		PlannedActivity: req.PlannedActivity,
		IsRestDay:       req.IsRestDay,
		Status:          req.Status,
		Extras:          req.Extras,
	}
	// Unknown body fields were dropped at decode; an all-empty patch
	// never reaches the store
	if patch.Empty() {
		logger.Error("update day error: no recognized fields in body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "no valid fields provided for update", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	day, err := s.daysService.UpdateDay(ctx, uid, dayID, patch)
	if err != nil {
		if errors.Is(err, errorvalues.ErrDayNotFound) {
			logger.Error("update day error: unknown day")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "day not found", nil)
			return
		}
		logger.Error("update day error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating day", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, day)
	logger.Info("day updated")
}

func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get stats error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	result, err := s.daysService.GetStats(ctx, uid, start, end)
	if err != nil {
		if errors.Is(err, errorvalues.ErrInvalidDateRange) {
			logger.Error("get stats error: invalid date range")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "Invalid start or end date format", nil)
			return
		}
		logger.Error("get stats error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting stats", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, result)
	logger.Info("stats provided")
}

func (s *Server) GetActivities(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get activities error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	activities, err := s.activitiesService.List(ctx, uid)
	if err != nil {
		logger.Error("get activities error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting activities list", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, activities)
	logger.Info("activities provided")
}

func (s *Server) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("activity deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		logger.Error("activity deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid activity id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.activitiesService.Delete(ctx, uid, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrActivityNotFound) {
			logger.Error("activity deletion error: unknown activity")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "activity doesn't exist", nil)
			return
		}
		logger.Error("activity deletion error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting activity", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"success": true})
	logger.Info("activity deleted")
}

func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get profile error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.GetProfile(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("get profile error: profile missing")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user profile not found", nil)
			return
		}
		logger.Error("get profile error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting profile", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
	logger.Info("profile provided")
}

func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("update profile error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req UpdateProfileRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("update profile error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	patch := entity.ProfilePatch{
		Name:     req.Name,
		Picture:  req.Picture,
		Settings: req.Settings,
	}
	if patch.Empty() {
		logger.Error("update profile error: no recognized fields in body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "no valid fields provided for update", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.UpdateProfile(ctx, uid, patch)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("update profile error: profile missing")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user profile not found", nil)
			return
		}
		logger.Error("update profile error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating profile", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, user)
	logger.Info("profile updated")
}

package transport

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	userapp "github.com/houzze/houzze-api/application/user"
	vacancyapp "github.com/houzze/houzze-api/application/vacancy"
	"github.com/houzze/houzze-api/constant"
	"github.com/houzze/houzze-api/model"
	utilsContext "github.com/houzze/houzze-api/utils/context"
	"github.com/houzze/houzze-api/utils/errors"
	validatorx "github.com/houzze/houzze-api/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	UserApp    userapp.UserApp
	VacancyApp vacancyapp.VacancyApp
}

func NewTransport(UserApp userapp.UserApp, VacancyApp vacancyapp.VacancyApp, internalAPIKey string) http.Handler {
	router := mux.NewRouter()

	rh := &RestHandler{
		UserApp:    UserApp,
		VacancyApp: VacancyApp,
	}

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// User routes
	router.HandleFunc("/api/users/register", rh.Register).Methods(http.MethodPost)
	router.HandleFunc("/api/users/login", rh.Login).Methods(http.MethodPost)
	router.HandleFunc("/api/users/logout", rh.Logout).Methods(http.MethodPost)
	router.HandleFunc("/api/users/account", rh.Account).Methods(http.MethodGet)

	// Vacancy routes
	router.HandleFunc("/api/vacancies/create", rh.CreateVacancy).Methods(http.MethodPost)
	router.HandleFunc("/api/vacancies/", rh.GetVacancies).Methods(http.MethodGet)
	router.HandleFunc("/api/vacancies", rh.GetVacancies).Methods(http.MethodGet)
	router.HandleFunc("/api/vacancies/{id}", rh.GetVacancy).Methods(http.MethodGet)
	router.HandleFunc("/api/vacancies/{id}", rh.UpdateVacancy).Methods(http.MethodPut)
	router.HandleFunc("/api/vacancies/{id}", rh.DeleteVacancy).Methods(http.MethodDelete)

	// Internal routes (expiration worker)
	internal := router.PathPrefix("/internal").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/vacancies/{id}", rh.ExpireVacancy).Methods(http.MethodDelete)

	// middleware
	router.Use(LoggingMiddleware())
	router.Use(AuthMiddleware(UserApp))

	// CORS wraps the router itself: mux only runs Use middleware for matched
	// routes, and preflight OPTIONS requests match nothing.
	return CORSMiddleware()(router)
}

// Register handler
// @Summary Register user
// @Description Register a new account
// @Tags Users
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 201 {object} SuccessBody
// @Failure 400 {object} ErrorBody
// @Router /api/users/register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// Login handler
// @Summary Login user
// @Description Verify credentials and issue a bearer token
// @Tags Users
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} SuccessBody
// @Failure 400 {object} ErrorBody
// @Router /api/users/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout
// @Description Stateless acknowledgement; always succeeds
// @Tags Users
// @Produce json
// @Success 200 {object} SuccessBody
// @Router /api/users/logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	writeSuccess(w, map[string]string{"message": "Logged out successfully."})
}

// Account handler
// @Summary Account details
// @Description Caller's profile plus their own vacancies
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SuccessBody
// @Failure 401 {object} ErrorBody
// @Router /api/users/account [get]
func (s *RestHandler) Account(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	res, err := s.UserApp.Account(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateVacancy handler
// @Summary Create vacancy
// @Description Validate and persist a new vacancy owned by the caller
// @Tags Vacancies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} SuccessBody
// @Failure 413 {object} ErrorBody
// @Failure 422 {object} ErrorBody
// @Router /api/vacancies/create [post]
func (s *RestHandler) CreateVacancy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	payload, size, err := decodeVacancyPayload(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.VacancyApp.Create(ctx, userID, payload, size)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, &model.VacancyResponse{
		Message: "Vacancy created successfully",
		Vacancy: res,
	})
}

// GetVacancies handler
// @Summary List vacancies
// @Description List, filter and sort vacancies
// @Tags Vacancies
// @Produce json
// @Param address query string false "substring match on address"
// @Param roomType query string false "exact room type"
// @Param postcode query string false "exact postcode"
// @Param preferredType query []string false "preferred tenant types"
// @Param rentMin query number false "minimum rent"
// @Param rentMax query number false "maximum rent"
// @Param bedrooms query int false "minimum bedrooms"
// @Param bathrooms query int false "minimum bathrooms"
// @Param parking query bool false "parking required"
// @Param bills query bool false "bills included"
// @Param available query string false "available on or after date"
// @Param search query string false "free-text search"
// @Param sortBy query string false "rent | createdAt | bedrooms | bathrooms"
// @Param sortOrder query string false "desc (default) or anything else for ascending"
// @Success 200 {object} SuccessBody
// @Failure 400 {object} ErrorBody
// @Router /api/vacancies/ [get]
func (s *RestHandler) GetVacancies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q := r.URL.Query()
	filter := &model.VacancyFilter{
		Address:       q.Get("address"),
		RoomType:      q.Get("roomType"),
		Postcode:      q.Get("postcode"),
		Category:      q.Get("category"),
		Nationality:   q.Get("nationality"),
		PreferredType: q["preferredType"],
		RentMin:       q.Get("rentMin"),
		RentMax:       q.Get("rentMax"),
		Bedrooms:      q.Get("bedrooms"),
		Bathrooms:     q.Get("bathrooms"),
		Parking:       q.Get("parking"),
		Bills:         q.Get("bills"),
		Available:     q.Get("available"),
		Search:        q.Get("search"),
		SortBy:        q.Get("sortBy"),
		SortOrder:     q.Get("sortOrder"),
	}

	res, err := s.VacancyApp.List(ctx, filter)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetVacancy handler
// @Summary Get vacancy
// @Description Fetch one vacancy by id
// @Tags Vacancies
// @Produce json
// @Param id path string true "vacancy id"
// @Success 200 {object} SuccessBody
// @Failure 404 {object} ErrorBody
// @Router /api/vacancies/{id} [get]
func (s *RestHandler) GetVacancy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	res, err := s.VacancyApp.Get(ctx, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, &model.VacancyResponse{Vacancy: res})
}

// UpdateVacancy handler
// @Summary Update vacancy
// @Description Re-validate and update a vacancy owned by the caller
// @Tags Vacancies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "vacancy id"
// @Success 200 {object} SuccessBody
// @Failure 404 {object} ErrorBody
// @Failure 422 {object} ErrorBody
// @Router /api/vacancies/{id} [put]
func (s *RestHandler) UpdateVacancy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	payload, size, err := decodeVacancyPayload(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.VacancyApp.Update(ctx, userID, id, payload, size)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, &model.VacancyResponse{
		Message: "Vacancy updated successfully",
		Vacancy: res,
	})
}

// DeleteVacancy handler
// @Summary Delete vacancy
// @Description Delete a vacancy owned by the caller
// @Tags Vacancies
// @Produce json
// @Security BearerAuth
// @Param id path string true "vacancy id"
// @Success 200 {object} SuccessBody
// @Failure 404 {object} ErrorBody
// @Router /api/vacancies/{id} [delete]
func (s *RestHandler) DeleteVacancy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	if err := s.VacancyApp.Delete(ctx, userID, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"message": "Vacancy deleted successfully"})
}

// ExpireVacancy removes a vacancy past its lifetime. Only reachable with the
// internal service key.
func (s *RestHandler) ExpireVacancy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := mux.Vars(r)["id"]

	if err := s.VacancyApp.Expire(ctx, id); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]string{"message": "Vacancy expired"})
}

// decodeVacancyPayload reads the raw body (bounded just above the payload cap
// so the oversize case is still detected) and decodes it into the untyped map
// the validation layer inspects.
func decodeVacancyPayload(r *http.Request) (map[string]interface{}, int, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, constant.MaxPayloadBytes+1))
	if err != nil {
		return nil, 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	if len(body) > constant.MaxPayloadBytes {
		return nil, len(body), errors.SetCustomError(constant.ErrPayloadTooLarge)
	}

	payload := map[string]interface{}{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, len(body), errors.SetCustomError(constant.ErrInvalidRequest)
	}

	return payload, len(body), nil
}

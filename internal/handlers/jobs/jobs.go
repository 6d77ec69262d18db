package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/workmesh/workmesh/internal/domain"
	"github.com/workmesh/workmesh/internal/dto"
	"github.com/workmesh/workmesh/internal/service/jobservice"
	"github.com/workmesh/workmesh/internal/service/ledgerservice"
	"github.com/workmesh/workmesh/pkg/auth"
	"github.com/workmesh/workmesh/pkg/utils"
)

type Service interface {
	List(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error)
	GetByID(ctx context.Context, id int) (*domain.Job, error)
	Update(ctx context.Context, id int, patch domain.JobPatch) (*domain.Job, error)
	Delete(ctx context.Context, id int) error
}

// Processor funds new postings: a job is only created together with its
// posting fee ledger entry.
type Processor interface {
	Process(ctx context.Context, cmd ledgerservice.Command) (*domain.Transaction, error)
}

type JobHandler struct {
	jobService Service
	processor  Processor
}

func New(jobService Service, processor Processor) *JobHandler {
	return &JobHandler{
		jobService: jobService,
		processor:  processor,
	}
}

func toJobDTO(job *domain.Job) dto.JobResponseDTO {
	return dto.JobResponseDTO{
		ID:          job.ID,
		EmployerID:  job.EmployerID,
		Title:       job.Title,
		Description: job.Description,
		Category:    job.Category,
		Difficulty:  job.Difficulty,
		PayAmount:   job.PayAmount,
		Tags:        job.Tags,
		Status:      job.Status,
		CreatedAt:   job.CreatedAt,
		UpdatedAt:   job.UpdatedAt,
	}
}

// List godoc
//
//	@Summary		List job postings
//	@Description	List jobs, optionally narrowed by category, difficulty and a case-insensitive search across title, description and tags.
//	@Tags			Jobs
//	@Produce		json
//	@Param			category	query		string	false	"Exact category match"
//	@Param			search		query		string	false	"Substring match on title/description/tags"
//	@Param			difficulty	query		string	false	"Exact difficulty match"
//	@Success		200			{array}		dto.JobResponseDTO
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/jobs [get]
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	filter := domain.JobFilter{
		Category:   r.URL.Query().Get("category"),
		Search:     r.URL.Query().Get("search"),
		Difficulty: r.URL.Query().Get("difficulty"),
	}

	jobs, err := h.jobService.List(r.Context(), filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.JobResponseDTO, len(jobs))
	for i := range jobs {
		response[i] = toJobDTO(&jobs[i])
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// Get godoc
//
//	@Summary		Get a job posting
//	@Tags			Jobs
//	@Produce		json
//	@Param			jobID	path		int	true	"Job id"
//	@Success		200		{object}	dto.JobResponseDTO
//	@Failure		404		{object}	utils.Response	"Job not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/jobs/{jobID} [get]
func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "jobID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid job id")
		return
	}

	job, err := h.jobService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, jobservice.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toJobDTO(job))
}

// Create godoc
//
//	@Summary		Post a new job
//	@Description	Create a job posting and charge the posting fee as one atomic unit. Supply an Idempotency-Key header to make retries safe.
//	@Tags			Jobs
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateJobRequestDTO	true	"Job fields"
//	@Success		201		{object}	dto.JobResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid job data"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/jobs [post]
func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	employerID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateJobRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	key := r.Header.Get("Idempotency-Key")
	if key == "" {
		key = uuid.NewString()
	}

	transaction, err := h.processor.Process(r.Context(), ledgerservice.JobPosting{
		EmployerID: employerID,
		Job: domain.Job{
			Title:       req.Title,
			Description: req.Description,
			Category:    req.Category,
			Difficulty:  req.Difficulty,
			PayAmount:   req.PayAmount,
			Tags:        req.Tags,
		},
		IdempotencyKey: key,
	})
	if err != nil {
		switch {
		case errors.Is(err, jobservice.ErrValidation), errors.Is(err, ledgerservice.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	job, err := h.jobService.GetByID(r.Context(), *transaction.JobID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toJobDTO(job))
}

// Update godoc
//
//	@Summary		Update a job posting
//	@Description	Apply a partial patch to a job. Id and creation time cannot be changed.
//	@Tags			Jobs
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			jobID	path		int						true	"Job id"
//	@Param			request	body		dto.UpdateJobRequestDTO	true	"Fields to change"
//	@Success		200		{object}	dto.JobResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid job data"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Job not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/jobs/{jobID} [patch]
func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "jobID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid job id")
		return
	}

	var req dto.UpdateJobRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	job, err := h.jobService.Update(r.Context(), id, domain.JobPatch{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Difficulty:  req.Difficulty,
		PayAmount:   req.PayAmount,
		Tags:        req.Tags,
		Status:      req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, jobservice.ErrNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, jobservice.ErrValidation):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toJobDTO(job))
}

// Delete godoc
//
//	@Summary		Delete a job posting
//	@Tags			Jobs
//	@Security		BearerAuth
//	@Produce		json
//	@Param			jobID	path		int	true	"Job id"
//	@Success		200		{object}	utils.Response	"Job deleted"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		404		{object}	utils.Response	"Job not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/jobs/{jobID} [delete]
func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "jobID"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid job id")
		return
	}

	if err := h.jobService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, jobservice.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "job deleted"})
}

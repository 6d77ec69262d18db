package transactions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/workmesh/workmesh/internal/domain"
	"github.com/workmesh/workmesh/internal/dto"
	"github.com/workmesh/workmesh/internal/service/jobservice"
	"github.com/workmesh/workmesh/internal/service/ledgerservice"
	"github.com/workmesh/workmesh/pkg/auth"
	"github.com/workmesh/workmesh/pkg/utils"
	"github.com/workmesh/workmesh/pkg/validate"
)

type Service interface {
	Process(ctx context.Context, cmd ledgerservice.Command) (*domain.Transaction, error)
	Earnings(ctx context.Context, userID int) (float64, []domain.Transaction, error)
	Revenue(ctx context.Context) (ledgerservice.RevenueSummary, []domain.Transaction, error)
}

type TransactionHandler struct {
	ledgerService Service
}

func New(ledgerService Service) *TransactionHandler {
	return &TransactionHandler{
		ledgerService: ledgerService,
	}
}

func toTransactionDTO(t *domain.Transaction) *dto.TransactionDTO {
	return &dto.TransactionDTO{
		ID:          t.ID,
		Kind:        t.Kind,
		UserID:      t.UserID,
		JobID:       t.JobID,
		Amount:      t.Amount,
		Description: t.Description,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
	}
}

func toTransactionDTOs(transactions []domain.Transaction) []dto.TransactionDTO {
	response := make([]dto.TransactionDTO, len(transactions))
	for i := range transactions {
		response[i] = *toTransactionDTO(&transactions[i])
	}
	return response
}

func (h *TransactionHandler) buildCommand(req *dto.TransactionRequestDTO, userID int) (ledgerservice.Command, error) {
	switch req.Type {
	case ledgerservice.KindJobPayment:
		return ledgerservice.JobPayment{
			WorkerID:       req.WorkerID,
			JobID:          req.JobID,
			Amount:         req.Amount,
			Description:    req.Description,
			IdempotencyKey: req.IdempotencyKey,
		}, nil
	case ledgerservice.KindWithdrawal:
		if !validate.IsLuna(req.Method) {
			return nil, errors.New("invalid withdrawal method number")
		}
		return ledgerservice.Withdrawal{
			UserID:         userID,
			Amount:         req.Amount,
			Method:         req.Method,
			IdempotencyKey: req.IdempotencyKey,
		}, nil
	case ledgerservice.KindJobPosting:
		if req.Job == nil {
			return nil, errors.New("job fields are required for a job posting")
		}
		return ledgerservice.JobPosting{
			EmployerID: userID,
			Job: domain.Job{
				Title:       req.Job.Title,
				Description: req.Job.Description,
				Category:    req.Job.Category,
				Difficulty:  req.Job.Difficulty,
				PayAmount:   req.Job.PayAmount,
				Tags:        req.Job.Tags,
			},
			IdempotencyKey: req.IdempotencyKey,
		}, nil
	default:
		return nil, errors.New("unknown transaction type")
	}
}

// CreateTransaction godoc
//
//	@Summary		Process a transaction
//	@Description	Validate and atomically apply one transaction: a job payment, a withdrawal or a job posting. Every request needs a client supplied idempotency key; a replay returns the original entry.
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TransactionRequestDTO	true	"Transaction request"
//	@Success		200		{object}	dto.TransactionResultDTO
//	@Failure		400		{object}	dto.TransactionResultDTO	"Malformed or missing input"
//	@Failure		401		{object}	utils.Response				"User not authorized"
//	@Failure		402		{object}	dto.TransactionResultDTO	"Insufficient funds"
//	@Failure		404		{object}	dto.TransactionResultDTO	"Referenced job not found"
//	@Failure		422		{object}	dto.TransactionResultDTO	"Invalid withdrawal method number"
//	@Failure		500		{object}	dto.TransactionResultDTO	"Internal server error"
//	@Router			/api/transactions [post]
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.TransactionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, dto.TransactionResultDTO{
			Success: false,
			Error:   "invalid request body",
		})
		return
	}

	cmd, err := h.buildCommand(&req, userID)
	if err != nil {
		code := http.StatusBadRequest
		if req.Type == ledgerservice.KindWithdrawal {
			code = http.StatusUnprocessableEntity
		}
		utils.RespondWithJSON(w, code, dto.TransactionResultDTO{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	transaction, err := h.ledgerService.Process(r.Context(), cmd)
	if err != nil {
		var code int
		switch {
		case errors.Is(err, ledgerservice.ErrInsufficientFunds):
			code = http.StatusPaymentRequired
		case errors.Is(err, jobservice.ErrNotFound):
			code = http.StatusNotFound
		case errors.Is(err, ledgerservice.ErrValidation), errors.Is(err, jobservice.ErrValidation):
			code = http.StatusBadRequest
		default:
			code = http.StatusInternalServerError
		}
		utils.RespondWithJSON(w, code, dto.TransactionResultDTO{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dto.TransactionResultDTO{
		Success:     true,
		Transaction: toTransactionDTO(transaction),
	})
}

// GetRevenue godoc
//
//	@Summary		Get revenue
//	@Description	With a user_id parameter: that user's earnings and transactions, readable by the user themselves or an admin. Without: the platform revenue summary over the full ledger, admin only.
//	@Tags			Transactions
//	@Security		BearerAuth
//	@Produce		json
//	@Param			user_id	query		int	false	"User to report on"
//	@Success		200		{object}	dto.PlatformRevenueResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid user id"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		403		{object}	utils.Response	"Not allowed to view this report"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/revenue [get]
func (h *TransactionHandler) GetRevenue(w http.ResponseWriter, r *http.Request) {
	callerID := r.Context().Value(auth.UserIDKey).(int)
	admin, _ := r.Context().Value(auth.AdminKey).(bool)

	if param := r.URL.Query().Get("user_id"); param != "" {
		userID, err := strconv.Atoi(param)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid user id")
			return
		}
		if userID != callerID && !admin {
			utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
			return
		}
		earnings, transactions, err := h.ledgerService.Earnings(r.Context(), userID)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		utils.RespondWithJSON(w, http.StatusOK, dto.UserRevenueResponseDTO{
			Earnings:     earnings,
			Transactions: toTransactionDTOs(transactions),
		})
		return
	}

	if !admin {
		utils.RespondWithError(w, http.StatusForbidden, "Forbidden")
		return
	}

	summary, transactions, err := h.ledgerService.Revenue(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PlatformRevenueResponseDTO{
		PlatformRevenue: dto.RevenueSummaryDTO{
			Total:      summary.Total,
			Week:       summary.Week,
			Today:      summary.Today,
			GrowthRate: summary.GrowthRate,
		},
		Transactions: toTransactionDTOs(transactions),
	})
}

package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/iwvelando/equity-payoff/pkg/constants"
	"github.com/iwvelando/equity-payoff/pkg/loans"
	"github.com/iwvelando/equity-payoff/pkg/output"
	"github.com/iwvelando/equity-payoff/pkg/payoff"
	"github.com/iwvelando/equity-payoff/pkg/validation"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type handler struct {
	logger            *zap.Logger
	calculator        *payoff.Calculator
	maxRequestSize    int64
	maxScheduleMonths int
	version           string
	now               func() time.Time
}

// NewHandler constructs the HTTP handler that serves the payoff API. A nil
// cfg selects DefaultConfig.
func NewHandler(logger *zap.Logger, cfg *Config, version string) http.Handler {
	return newHandler(logger, cfg, version).routes()
}

func newHandler(logger *zap.Logger, cfg *Config, version string) *handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	maxRequestSize := cfg.RequestSizeBytes()
	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestSizeBytes
	}
	maxScheduleMonths := cfg.Schedule.MaxMonths
	if maxScheduleMonths <= 0 {
		maxScheduleMonths = constants.MaxRequestScheduleMonths
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	return &handler{
		logger:            logger,
		calculator:        payoff.NewCalculator(logger, constants.DefaultTimelines, cfg.Schedule.DefaultMonths),
		maxRequestSize:    maxRequestSize,
		maxScheduleMonths: maxScheduleMonths,
		version:           trimmedVersion,
		now:               time.Now,
	}
}

func (h *handler) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/scenarios", h.handleScenarios)
	mux.HandleFunc("/api/schedule", h.handleSchedule)
	mux.HandleFunc("/api/export/csv", h.handleExportCSV)
	mux.HandleFunc("/api/export/xlsx", h.handleExportXLSX)
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type validationResponse struct {
	Valid  bool                       `json:"valid"`
	Fields validation.InputValidation `json:"fields"`
	Errors []validation.FieldError    `json:"errors,omitempty"`
}

type scenariosResponse struct {
	Inputs         payoff.LoanInputs       `json:"inputs"`
	NegativeEquity float64                 `json:"negativeEquity"`
	Scenarios      []payoff.PayoffScenario `json:"scenarios"`
	Series         []payoff.BalancePoint   `json:"series,omitempty"`
	CSV            string                  `json:"csv"`
	Duration       string                  `json:"duration"`
}

type scheduleRequest struct {
	Principal          float64 `json:"principal"`
	MonthlyPayment     float64 `json:"monthlyPayment"`
	AnnualInterestRate float64 `json:"annualInterestRate"`
	MaxMonths          int     `json:"maxMonths"`
}

type scheduleResponse struct {
	Entries       []loans.AmortizationEntry `json:"entries"`
	PaidOff       bool                      `json:"paidOff"`
	TotalInterest float64                   `json:"totalInterest"`
	TotalPaid     float64                   `json:"totalPaid"`
}

type invalidInputResponse struct {
	Error      string             `json:"error"`
	Validation validationResponse `json:"validation"`
}

func (h *handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var partial validation.PartialInputs
	if !h.decode(w, r, &partial, "server.handleValidate") {
		return
	}

	h.writeJSON(w, http.StatusOK, newValidationResponse(validation.ValidateInputs(partial)))
}

func (h *handler) handleScenarios(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	inputs, ok := h.decodeValidInputs(w, r, "server.handleScenarios")
	if !ok {
		return
	}

	scenarios := h.calculator.Scenarios(inputs)
	elapsed := time.Since(start)

	response := scenariosResponse{
		Inputs:         inputs,
		NegativeEquity: inputs.NegativeEquity(),
		Scenarios:      scenarios,
		Series:         payoff.BalanceSeries(scenarios, inputs.AnnualInterestRate),
		CSV:            output.CsvString(inputs, scenarios, h.now()),
		Duration:       elapsed.String(),
	}

	h.logger.Info("scenarios computed",
		zap.String("op", "server.handleScenarios"),
		zap.Int("scenarios", len(scenarios)),
		zap.Float64("negativeEquity", response.NegativeEquity),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var req scheduleRequest
	if !h.decode(w, r, &req, "server.handleSchedule") {
		return
	}
	if req.MaxMonths < 0 || req.MaxMonths > h.maxScheduleMonths {
		h.respondErrorWithOp(w, http.StatusBadRequest,
			fmt.Sprintf("maxMonths must be between 0 and %d, got %d", h.maxScheduleMonths, req.MaxMonths),
			"server.handleSchedule")
		return
	}

	// Zero selects the calculator's configured horizon.
	entries := h.calculator.Schedule(req.Principal, req.MonthlyPayment, req.AnnualInterestRate, req.MaxMonths)
	if entries == nil {
		entries = []loans.AmortizationEntry{}
	}

	h.writeJSON(w, http.StatusOK, scheduleResponse{
		Entries:       entries,
		PaidOff:       loans.PaidOff(entries),
		TotalInterest: loans.TotalInterest(entries),
		TotalPaid:     loans.TotalPayments(entries),
	})
}

func (h *handler) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	inputs, ok := h.decodeValidInputs(w, r, "server.handleExportCSV")
	if !ok {
		return
	}

	generatedAt := h.now()
	body := output.CsvString(inputs, h.calculator.Scenarios(inputs), generatedAt)
	h.writeAttachment(w, "text/csv; charset=utf-8", output.ExportFileName(generatedAt, "csv"), []byte(body), "server.handleExportCSV")
}

func (h *handler) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	inputs, ok := h.decodeValidInputs(w, r, "server.handleExportXLSX")
	if !ok {
		return
	}

	generatedAt := h.now()
	body, err := output.WorkbookBytes(inputs, h.calculator.Scenarios(inputs), generatedAt)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to build workbook: %v", err), "server.handleExportXLSX")
		return
	}
	h.writeAttachment(w, xlsxContentType, output.ExportFileName(generatedAt, "xlsx"), body, "server.handleExportXLSX")
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// decodeValidInputs decodes loan inputs and rejects them with 422 when they
// fail validation.
func (h *handler) decodeValidInputs(w http.ResponseWriter, r *http.Request, op string) (payoff.LoanInputs, bool) {
	var partial validation.PartialInputs
	if !h.decode(w, r, &partial, op) {
		return payoff.LoanInputs{}, false
	}

	result := validation.ValidateInputs(partial)
	if !result.IsValid() {
		h.logger.Info("rejected invalid loan inputs",
			zap.String("op", op),
			zap.Int("fields", len(result.Errors())),
		)
		h.writeJSON(w, http.StatusUnprocessableEntity, invalidInputResponse{
			Error:      result.Err().Error(),
			Validation: newValidationResponse(result),
		})
		return payoff.LoanInputs{}, false
	}

	return partial.LoanInputs(), true
}

func (h *handler) decode(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize), op)
			return false
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return false
	}
	return true
}

func newValidationResponse(result validation.InputValidation) validationResponse {
	return validationResponse{
		Valid:  result.IsValid(),
		Fields: result,
		Errors: result.Errors(),
	}
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeAttachment(w http.ResponseWriter, contentType, filename string, body []byte, op string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		h.logger.Error("failed to write attachment",
			zap.String("op", op),
			zap.Error(err),
		)
	}
}

// writeJSON encodes payload before committing the status. Unencodable
// payloads, such as totals that overflowed to +Inf, answer 500.
func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		h.logger.Error("failed to encode JSON response",
			zap.Int("status", status),
			zap.Error(err),
		)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"failed to encode response"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

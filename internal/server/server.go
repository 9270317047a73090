package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/iwvelando/commute-calculator/internal/commute"
	"github.com/iwvelando/commute-calculator/internal/config"
	"github.com/iwvelando/commute-calculator/internal/summary"
	"github.com/iwvelando/commute-calculator/pkg/constants"
	"github.com/iwvelando/commute-calculator/pkg/output"
	"github.com/iwvelando/commute-calculator/pkg/validation"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Options tunes the HTTP handler.
type Options struct {
	MaxUploadSize int64
	Version       string
	RateLimit     RateLimitConfig
}

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler that serves the comparison API.
func NewHandler(logger *zap.Logger, opts Options) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	maxUploadSize := opts.MaxUploadSize
	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(opts.Version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, maxUploadSize: maxUploadSize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Comparison from JSON inputs
	mux.HandleFunc("/api/compare", h.handleCompare)

	// Comparison from an uploaded commute YAML file
	mux.HandleFunc("/api/compare/upload", h.handleCompareUpload)

	// Config serialization endpoint for editor downloads
	mux.HandleFunc("/api/editor/export", h.handleConfigExport)

	mux.HandleFunc("/api/defaults", h.handleDefaults)
	mux.HandleFunc("/api/version", h.handleVersion)

	var root http.Handler = mux
	root = withRateLimit(opts.RateLimit, logger, root)
	root = withAccessLog(logger, root)
	root = withRequestID(root)
	return root
}

type compareResponse struct {
	Inputs         commute.Inputs           `json:"inputs"`
	Variant        commute.Variant          `json:"variant"`
	PeriodLabel    string                   `json:"periodLabel"`
	Result         commute.ComparisonResult `json:"result"`
	Scenarios      []summary.Scenario       `json:"scenarios"`
	Chart          []summary.ChartPoint     `json:"chart"`
	Cheapest       *summary.Scenario        `json:"cheapest,omitempty"`
	Recommendation summary.Recommendation   `json:"recommendation"`
	Warnings       []string                 `json:"warnings,omitempty"`
	CSV            string                   `json:"csv"`
	Duration       string                   `json:"duration"`
	ConfigYAML     string                   `json:"configYaml,omitempty"`
}

type errorResponse struct {
	Error     string                   `json:"error"`
	Problems  []validation.FieldProblem `json:"problems,omitempty"`
	RequestID string                   `json:"requestId,omitempty"`
}

func (h *handler) handleCompare(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCompare"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	// Decoding over the defaults leaves omitted fields at their form values.
	cfg := config.DefaultConfiguration()
	if err := json.NewDecoder(r.Body).Decode(&cfg.Inputs); err != nil && !errors.Is(err, io.EOF) {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxUploadSize), op)
			return
		}
		h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode inputs: %v", err), op)
		return
	}

	h.runCompare(w, r, cfg, start, op, false)
}

func (h *handler) handleCompareUpload(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCompareUpload"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, r, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize), op)
			return
		}
		h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to parse upload: %v", err), op)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, "missing configuration file", op)
		return
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			h.logger.Warn("failed to close uploaded file",
				zap.String("op", op),
				zap.Error(closeErr),
			)
		}
	}()

	cfg, err := config.LoadConfigurationFromReader(file)
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}

	h.runCompare(w, r, cfg, start, op, true)
}

func (h *handler) runCompare(w http.ResponseWriter, r *http.Request, cfg *config.Configuration, start time.Time, op string, includeConfig bool) {
	warnings := cfg.Sanitize()
	warnings = append(warnings, cfg.ValidateConfiguration()...)

	if err := validation.ValidateInputs(cfg.Inputs); err != nil {
		var inputsErr *validation.InputsError
		if errors.As(err, &inputsErr) {
			h.respondProblems(w, r, http.StatusBadRequest, err.Error(), inputsErr.Problems, op)
			return
		}
		h.respondError(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}

	result, err := commute.Calculate(cfg.Inputs)
	if err != nil {
		if errors.Is(err, commute.ErrInvalidInput) {
			h.respondError(w, r, http.StatusUnprocessableEntity, err.Error(), op)
			return
		}
		h.respondError(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to compute comparison: %v", err), op)
		return
	}

	report := summary.Build(h.logger, result)
	elapsed := time.Since(start)

	response := compareResponse{
		Inputs:         cfg.Inputs,
		Variant:        report.Variant,
		PeriodLabel:    report.PeriodLabel,
		Result:         report.Result,
		Scenarios:      report.Scenarios,
		Chart:          report.Chart,
		Cheapest:       report.Cheapest,
		Recommendation: report.Recommendation,
		Warnings:       warnings,
		CSV:            output.CsvString(report),
		Duration:       elapsed.String(),
	}

	if includeConfig {
		configBytes, err := yaml.Marshal(cfg)
		if err != nil {
			h.logger.Warn("failed to marshal effective configuration",
				zap.String("op", op),
				zap.Error(err),
			)
		} else {
			response.ConfigYAML = string(configBytes)
		}
	}

	h.logger.Info("comparison computed",
		zap.String("op", op),
		zap.String("variant", string(report.Variant)),
		zap.Int("scenarios", len(report.Scenarios)),
		zap.Int("warnings", len(warnings)),
		zap.Duration("duration", elapsed),
		zap.String("requestId", RequestIDFromContext(r.Context())),
	)

	h.writeJSON(w, http.StatusOK, response)
}

func (h *handler) handleDefaults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"inputs": commute.DefaultInputs(),
	})
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

func (h *handler) handleConfigExport(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleConfigExport"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	var payload map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to decode configuration: %v", err), op)
		return
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}

	yamlBytes, err := marshalOrderedConfigYAML(payload)
	if err != nil {
		h.respondError(w, r, http.StatusBadRequest, fmt.Sprintf("failed to encode configuration: %v", err), op)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"configYaml": string(yamlBytes),
	})
}

var configSections = []string{"logging", "output", "inputs"}

// marshalOrderedConfigYAML writes logging, output and inputs first and any
// other keys after them in sorted order. A bare inputs object is wrapped in
// an inputs section.
func marshalOrderedConfigYAML(payload map[string]interface{}) ([]byte, error) {
	if !hasSection(payload) && len(payload) > 0 {
		payload = map[string]interface{}{"inputs": payload}
	}

	items := make([]orderedItem, 0, len(payload))
	seen := make(map[string]struct{})

	for _, key := range configSections {
		if value, ok := payload[key]; ok {
			items = append(items, orderedItem{key: key, value: value})
			seen[key] = struct{}{}
		}
	}

	remainingKeys := make([]string, 0, len(payload))
	for key := range payload {
		if _, already := seen[key]; already {
			continue
		}
		remainingKeys = append(remainingKeys, key)
	}
	sort.Strings(remainingKeys)
	for _, key := range remainingKeys {
		items = append(items, orderedItem{key: key, value: payload[key]})
	}

	ordered := orderedConfig{items: items}
	return yaml.Marshal(ordered)
}

func hasSection(payload map[string]interface{}) bool {
	for _, key := range configSections {
		if _, ok := payload[key]; ok {
			return true
		}
	}
	return false
}

type orderedConfig struct {
	items []orderedItem
}

type orderedItem struct {
	key   string
	value interface{}
}

func (o orderedConfig) MarshalYAML() (interface{}, error) {
	mapNode := &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
	}

	for _, item := range o.items {
		keyNode := &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Value: item.key,
		}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(item.value); err != nil {
			return nil, err
		}
		mapNode.Content = append(mapNode.Content, keyNode, valueNode)
	}

	return mapNode, nil
}

func (h *handler) respondError(w http.ResponseWriter, r *http.Request, status int, msg string, op string) {
	h.respondProblems(w, r, status, msg, nil, op)
}

func (h *handler) respondProblems(w http.ResponseWriter, r *http.Request, status int, msg string, problems []validation.FieldProblem, op string) {
	requestID := RequestIDFromContext(r.Context())
	h.logger.Error("comparison request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
		zap.String("requestId", requestID),
	)

	h.writeJSON(w, status, errorResponse{Error: msg, Problems: problems, RequestID: requestID})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	writeJSON(w, h.logger, status, payload)
}

func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to write JSON response", zap.Error(err))
	}
}

func writeJSONError(w http.ResponseWriter, logger *zap.Logger, status int, msg string) {
	writeJSON(w, logger, status, errorResponse{Error: msg})
}

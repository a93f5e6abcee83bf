package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/hyperjump/clausewise/internal/analysis"
	"github.com/hyperjump/clausewise/internal/config"
	"github.com/hyperjump/clausewise/internal/extract"
	"github.com/hyperjump/clausewise/internal/models"
	"github.com/hyperjump/clausewise/internal/normalize"
	"github.com/hyperjump/clausewise/internal/summarize"
)

// maxJSONBody bounds JSON request bodies.
const maxJSONBody = 10 << 20

type textRequest struct {
	Text     string `json:"text"`
	Filename string `json:"filename,omitempty"`
}

type analyzeResponse struct {
	ID       string                `json:"id"`
	Document documentStats         `json:"document"`
	Analysis models.AnalysisResult `json:"analysis"`
}

type documentStats struct {
	Filename  string `json:"filename,omitempty"`
	WordCount int    `json:"word_count"`
	CharCount int    `json:"char_count"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	lib := s.processor.Analyzer().Library()
	resp := map[string]interface{}{
		"supported_formats": extract.SupportedExtensions(),
		"max_upload_bytes":  s.config.Analysis.MaxUploadBytes,
		"patterns": map[string]int{
			"clause_types":  len(lib.ClauseTypes),
			"jurisdictions": len(lib.Jurisdictions),
			"compliance":    len(lib.Compliance),
			"citations":     len(lib.Citations),
		},
		"nlp_endpoint_configured": s.config.NLP.Endpoint != "",
		"summarizer": map[string]interface{}{
			"provider": s.config.Summarizer.Provider,
			"model":    s.config.Summarizer.Model,
		},
		"embedding_enabled": s.config.Embedding.Enabled,
	}
	if s.watch != nil {
		resp["watch_directories"] = s.watch.Directories()
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handlePatterns(w http.ResponseWriter, r *http.Request) {
	data, err := s.processor.Analyzer().Library().Marshal()
	if err != nil {
		s.logger.Error("patterns: marshal failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeText(w, r)
	if !ok {
		return
	}
	doc := analysis.NewDocument(req.Filename, req.Text)
	if doc.CleanText == "" {
		s.respondError(w, http.StatusBadRequest, "text is empty")
		return
	}
	s.logger.Debug("analyze request", zap.String("id", doc.ID), zap.Int("words", doc.WordCount))
	s.respondJSON(w, http.StatusOK, analyzeResponse{
		ID:       doc.ID,
		Document: documentStats{Filename: doc.Filename, WordCount: doc.WordCount, CharCount: doc.CharCount},
		Analysis: s.processor.Analyzer().Analyze(r.Context(), doc.CleanText),
	})
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	limit := s.config.Analysis.MaxUploadBytes
	if limit <= 0 {
		limit = config.DefaultMaxUploadBytes
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || r.ContentLength > limit {
			s.respondError(w, http.StatusRequestEntityTooLarge, "file too large")
			return
		}
		s.respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !extract.Supported(ext) {
		s.respondError(w, http.StatusUnsupportedMediaType, "unsupported format: "+ext)
		return
	}
	data, err := readAll(file, header.Size)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "failed to read file")
		return
	}
	s.logger.Debug("document upload", zap.String("filename", header.Filename), zap.Int("bytes", len(data)))

	doc, err := s.processor.ProcessBytes(r.Context(), header.Filename, data)
	switch {
	case errors.Is(err, extract.ErrUnsupportedFormat):
		s.respondError(w, http.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, analysis.ErrExtractionFailed):
		s.respondError(w, http.StatusUnprocessableEntity, err.Error())
	case err != nil:
		s.logger.Error("document processing failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
	default:
		s.respondJSON(w, http.StatusOK, doc)
	}
}

func (s *Server) handleEntities(w http.ResponseWriter, r *http.Request) {
	if text, ok := s.normalizedText(w, r); ok {
		s.respondJSON(w, http.StatusOK, s.processor.Analyzer().ExtractEntities(r.Context(), text))
	}
}

func (s *Server) handleDates(w http.ResponseWriter, r *http.Request) {
	if text, ok := s.normalizedText(w, r); ok {
		s.respondJSON(w, http.StatusOK, map[string]interface{}{"dates": s.processor.Analyzer().ExtractDates(text)})
	}
}

func (s *Server) handleParties(w http.ResponseWriter, r *http.Request) {
	if text, ok := s.normalizedText(w, r); ok {
		s.respondJSON(w, http.StatusOK, map[string]interface{}{"parties": s.processor.Analyzer().ExtractParties(text)})
	}
}

func (s *Server) handleCitations(w http.ResponseWriter, r *http.Request) {
	if text, ok := s.normalizedText(w, r); ok {
		s.respondJSON(w, http.StatusOK, map[string]interface{}{"citations": s.processor.Analyzer().ExtractCitations(text)})
	}
}

func (s *Server) handleSections(w http.ResponseWriter, r *http.Request) {
	if text, ok := s.normalizedText(w, r); ok {
		s.respondJSON(w, http.StatusOK, map[string]interface{}{"legal_sections": s.processor.Analyzer().IdentifySections(text)})
	}
}

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	if text, ok := s.normalizedText(w, r); ok {
		s.respondJSON(w, http.StatusOK, s.summaries.Insights(r.Context(), text))
	}
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var req models.SummaryRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody)).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Text = normalize.Normalize(req.Text)
	s.logger.Debug("summarize request", zap.String("kind", string(req.Kind)), zap.Int("chars", len(req.Text)))
	summary, err := s.summaries.Summarize(r.Context(), req)
	switch {
	case errors.Is(err, summarize.ErrEmptyText), errors.Is(err, summarize.ErrUnknownKind):
		s.respondError(w, http.StatusBadRequest, err.Error())
	case err != nil:
		s.logger.Error("summarize failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
	default:
		s.respondJSON(w, http.StatusOK, summary)
	}
}

func (s *Server) handleWatchDirectoriesList(w http.ResponseWriter, r *http.Request) {
	if s.watch == nil {
		s.respondError(w, http.StatusNotImplemented, "watch not enabled")
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"directories": s.watch.Directories()})
}

type watchAddRequest struct {
	Path string `json:"path"`
	Sync *bool  `json:"sync,omitempty"`
}

func (s *Server) handleWatchDirectoriesAdd(w http.ResponseWriter, r *http.Request) {
	if s.watch == nil {
		s.respondError(w, http.StatusNotImplemented, "watch not enabled")
		return
	}
	var req watchAddRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody)).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Path == "" {
		s.respondError(w, http.StatusBadRequest, "path is required")
		return
	}
	abs, err := filepath.Abs(req.Path)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid path")
		return
	}
	info, err := os.Stat(abs)
	if err != nil {
		if os.IsNotExist(err) {
			s.respondError(w, http.StatusNotFound, "directory not found")
			return
		}
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !info.IsDir() {
		s.respondError(w, http.StatusBadRequest, "path is not a directory")
		return
	}
	syncExisting := true
	if req.Sync != nil {
		syncExisting = *req.Sync
	}
	s.logger.Debug("watch add directory request", zap.String("path", abs), zap.Bool("sync_existing", syncExisting))
	if err := s.watch.AddDirectory(abs, syncExisting); err != nil {
		s.logger.Error("watch add directory failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.persistWatchDirectories()
	s.respondJSON(w, http.StatusCreated, map[string]string{"path": abs, "status": "added"})
}

func (s *Server) handleWatchDirectoriesRemove(w http.ResponseWriter, r *http.Request) {
	if s.watch == nil {
		s.respondError(w, http.StatusNotImplemented, "watch not enabled")
		return
	}
	path := r.URL.Query().Get("path")
	if path == "" {
		var body struct {
			Path string `json:"path"`
		}
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody)).Decode(&body); err == nil {
			path = body.Path
		}
	}
	if path == "" {
		s.respondError(w, http.StatusBadRequest, "path is required (query or body)")
		return
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid path")
		return
	}
	s.logger.Debug("watch remove directory request", zap.String("path", abs))
	if err := s.watch.RemoveDirectory(abs); err != nil {
		s.logger.Error("watch remove directory failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.persistWatchDirectories()
	s.respondJSON(w, http.StatusOK, map[string]string{"path": abs, "status": "removed"})
}

// persistWatchDirectories writes the current watch roots back to the config file.
func (s *Server) persistWatchDirectories() {
	if s.configPath == "" {
		return
	}
	s.configMu.Lock()
	defer s.configMu.Unlock()
	s.config.Watch.Directories = s.watch.Directories()
	if err := config.Save(s.configPath, s.config); err != nil {
		s.logger.Warn("failed to persist watch config", zap.Error(err))
	}
}

func (s *Server) decodeText(w http.ResponseWriter, r *http.Request) (textRequest, bool) {
	var req textRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxJSONBody)).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return req, false
	}
	if strings.TrimSpace(req.Text) == "" {
		s.respondError(w, http.StatusBadRequest, "text is required")
		return req, false
	}
	return req, true
}

// normalizedText decodes a {"text": ...} body and returns the normalized text.
func (s *Server) normalizedText(w http.ResponseWriter, r *http.Request) (string, bool) {
	req, ok := s.decodeText(w, r)
	if !ok {
		return "", false
	}
	text := normalize.Normalize(req.Text)
	if text == "" {
		s.respondError(w, http.StatusBadRequest, "text is empty")
		return "", false
	}
	return text, true
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}

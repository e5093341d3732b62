package server

import (
	"encoding/json"
	"fmt"
	"mime"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/colorcraft/colorcraft/internal/colour"
	imgpkg "github.com/colorcraft/colorcraft/internal/image"
)

// allowedContentTypes are the upload types accepted by extraction.
var allowedContentTypes = []string{"image/jpeg", "image/png", "image/webp"}

// multipartMemory is held in memory before parts spill to disk.
const multipartMemory = 8 << 20

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type extractResponse struct {
	Success bool                         `json:"success"`
	Colours []colour.ExtractedColourJSON `json:"colors"`
	Count   int                          `json:"count"`
}

type paletteRequest struct {
	Colours []colour.Colour `json:"colors"`
}

type analysis struct {
	ColourTheory  *colour.HarmonyReport       `json:"color_theory"`
	Accessibility *colour.AccessibilityReport `json:"accessibility"`
}

type analysisResponse struct {
	Success  bool     `json:"success"`
	Analysis analysis `json:"analysis"`
}

type suggestResponse struct {
	Success     bool                       `json:"success"`
	Suggestions []*colour.SuggestionReport `json:"suggestions"`
}

type fullAnalysisResponse struct {
	Success  bool                         `json:"success"`
	Colours  []colour.ExtractedColourJSON `json:"colors"`
	Analysis analysis                     `json:"analysis"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Message: "ColorCraft API is running"})
}

func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	palette, err := s.extractUpload(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	body := palette.JSON()
	writeJSON(w, http.StatusOK, extractResponse{Success: true, Colours: body.Colours, Count: body.Count})
}

func (s *Server) handleAnalyse(w http.ResponseWriter, r *http.Request) {
	palette, err := s.decodePalette(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	result, err := analyse(palette)
	if err != nil {
		s.writeError(w, r, fmt.Errorf("error analyzing colors: %w", err))
		return
	}
	writeJSON(w, http.StatusOK, analysisResponse{Success: true, Analysis: result})
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	palette, err := s.decodePalette(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	reports, err := colour.GeneratePaletteSuggestions(palette)
	if err != nil {
		s.writeError(w, r, fmt.Errorf("error generating suggestions: %w", err))
		return
	}

	if id := r.URL.Query().Get("scheme"); id != "" {
		scheme, err := colour.SchemeByID(id)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		for _, report := range reports {
			report.Harmonies = []colour.SchemeReport{scheme.Generate(report.Base)}
		}
	}

	writeJSON(w, http.StatusOK, suggestResponse{Success: true, Suggestions: reports})
}

func (s *Server) handleFullAnalysis(w http.ResponseWriter, r *http.Request) {
	palette, err := s.extractUpload(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	result, err := analyse(palette)
	if err != nil {
		s.writeError(w, r, fmt.Errorf("error analyzing colors: %w", err))
		return
	}
	writeJSON(w, http.StatusOK, fullAnalysisResponse{Success: true, Colours: palette.JSON().Colours, Analysis: result})
}

// analyse runs the harmony analysis and, for two or more colours, the
// pairwise accessibility analysis.
func analyse(p *colour.Palette) (analysis, error) {
	theory, err := colour.AnalyseHarmony(p)
	if err != nil {
		return analysis{}, err
	}
	result := analysis{ColourTheory: theory}
	if p.Len() >= 2 {
		result.Accessibility, err = colour.AnalyseAccessibility(p)
		if err != nil {
			return analysis{}, err
		}
	}
	return result, nil
}

func (s *Server) decodePalette(w http.ResponseWriter, r *http.Request) (*colour.Palette, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	var req paletteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if statusFor(err) != http.StatusInternalServerError {
			return nil, err
		}
		return nil, badRequest(fmt.Sprintf("invalid request body: %v", err))
	}
	if len(req.Colours) == 0 {
		return nil, fmt.Errorf("%w: colors must contain at least 1 colour", colour.ErrEmptyPalette)
	}
	return colour.NewPalette(req.Colours), nil
}

// extractUpload validates the multipart upload and runs extraction on it.
func (s *Server) extractUpload(w http.ResponseWriter, r *http.Request) (*colour.Palette, error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		if statusFor(err) == http.StatusRequestEntityTooLarge {
			return nil, err
		}
		return nil, badRequest(fmt.Sprintf("invalid multipart form: %v", err))
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, badRequest("file is required")
	}
	defer file.Close()

	contentType, _, _ := mime.ParseMediaType(header.Header.Get("Content-Type"))
	if !slices.Contains(allowedContentTypes, contentType) {
		return nil, badRequest("Invalid file type. Allowed types: " + strings.Join(allowedContentTypes, ", "))
	}

	count, err := colourCount(r)
	if err != nil {
		return nil, err
	}

	img, format, err := imgpkg.Decode(file)
	if err != nil {
		return nil, err
	}
	s.logger.Debug("decoded upload", "filename", header.Filename, "format", format, "bounds", img.Bounds().String())

	cfg := colour.DefaultExtractorConfig()
	cfg.ColorCount = count
	cfg.Options = s.cfg.Extract

	palette, err := imgpkg.ExtractPalette(img, s.cfg.MaxDimension, cfg)
	if err != nil {
		return nil, fmt.Errorf("error extracting colors: %w", err)
	}
	return palette, nil
}

func colourCount(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("n_colors")
	if raw == "" {
		return colour.DefaultExtractColours, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, badRequest("n_colors must be an integer")
	}
	if n < colour.MinExtractColours || n > colour.MaxExtractColours {
		return 0, badRequest(fmt.Sprintf("n_colors must be between %d and %d", colour.MinExtractColours, colour.MaxExtractColours))
	}
	return n, nil
}

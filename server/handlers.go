package server

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/razkarizaldi/tinygenkey/config"
	"github.com/razkarizaldi/tinygenkey/keys"
)

// App holds the handler dependencies: the generator defaults from config
// and a logger.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
}

func NewApp(cfg *config.Config, logger *slog.Logger) *App {
	return &App{cfg: cfg, logger: logger}
}

type generateRequest struct {
	Preset   string  `json:"preset"`
	Alphabet *string `json:"alphabet"`
	Length   *int    `json:"length"`
	Prefix   *string `json:"prefix"`
	Suffix   *string `json:"suffix"`
	Count    *int    `json:"count"`
}

type generateResponse struct {
	Keys []string `json:"keys"`
}

// Generate builds one or more keys. Request fields override the config
// profile; a literal alphabet wins over a preset.
func (a *App) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errInvalidRequest)
		return
	}

	gen := a.cfg.Generator
	length := gen.Length
	if req.Length != nil {
		length = *req.Length
	}
	count := gen.Count
	if req.Count != nil {
		count = *req.Count
	}
	prefix := gen.Prefix
	if req.Prefix != nil {
		prefix = *req.Prefix
	}
	suffix := gen.Suffix
	if req.Suffix != nil {
		suffix = *req.Suffix
	}
	if length < 0 || count < 0 {
		writeError(w, errNegativeValue)
		return
	}

	alphabet, err := a.resolveAlphabet(req.Alphabet, req.Preset)
	if err != nil {
		writeError(w, errUnknownPreset)
		return
	}

	list, err := keys.GenerateMany(count, alphabet, length, prefix, suffix)
	switch {
	case errors.Is(err, keys.ErrEmptyAlphabet):
		writeError(w, errEmptyAlphabet)
		return
	case err != nil:
		a.logger.Error("key generation failed", "err", err)
		writeError(w, errInternal)
		return
	}

	a.logger.Info("generated keys", "count", count, "length", length)
	writeJSON(w, http.StatusOK, generateResponse{Keys: list})
}

// resolveAlphabet applies the literal-beats-preset rule across request and
// config, falling back to the config profile when the request names
// neither. A present-but-empty literal alphabet is passed through so the
// generator can reject it.
func (a *App) resolveAlphabet(literal *string, preset string) (string, error) {
	if literal != nil {
		return *literal, nil
	}
	if preset != "" {
		return keys.Preset(preset).Alphabet()
	}
	gen := a.cfg.Generator
	if gen.Alphabet != "" {
		return gen.Alphabet, nil
	}
	return keys.Preset(gen.Preset).Alphabet()
}

type verifyRequest struct {
	Key       string   `json:"key"`
	Keys      []string `json:"keys"`
	Preset    string   `json:"preset"`
	Alphabet  *string  `json:"alphabet"`
	MinLength *int     `json:"min_length"`
	MaxLength *int     `json:"max_length"`
	Prefix    string   `json:"prefix"`
	Suffix    string   `json:"suffix"`
}

type verifyBatchResponse struct {
	Reports []keys.Report `json:"reports"`
}

// Verify checks a key (or a batch of keys) and always answers 200 with a
// structured report; only parameter mistakes produce an error status.
func (a *App) Verify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errInvalidRequest)
		return
	}
	if req.Key == "" && req.Keys == nil {
		writeError(w, errMissingKey)
		return
	}

	var charset keys.Charset
	switch {
	case req.Alphabet != nil:
		charset = keys.CharsetLiteral(*req.Alphabet)
	case req.Preset != "":
		charset = keys.CharsetPreset(keys.Preset(req.Preset))
	}

	params := keys.VerifyParams{
		Charset:   charset,
		MinLength: req.MinLength,
		MaxLength: req.MaxLength,
		Prefix:    req.Prefix,
		Suffix:    req.Suffix,
	}

	if req.Keys != nil {
		reports, err := keys.VerifyAll(req.Keys, params)
		if err != nil {
			writeError(w, errUnknownPreset)
			return
		}
		writeJSON(w, http.StatusOK, verifyBatchResponse{Reports: reports})
		return
	}

	report, err := keys.Verify(req.Key, params)
	if err != nil {
		writeError(w, errUnknownPreset)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

type presetEntry struct {
	Name     string `json:"name"`
	Alphabet string `json:"alphabet"`
}

// Presets lists the built-in alphabets.
func (a *App) Presets(w http.ResponseWriter, r *http.Request) {
	list := make([]presetEntry, 0, len(keys.Presets()))
	for _, p := range keys.Presets() {
		alphabet, err := p.Alphabet()
		if err != nil {
			continue
		}
		list = append(list, presetEntry{Name: string(p), Alphabet: alphabet})
	}
	writeJSON(w, http.StatusOK, list)
}

// Health is a liveness probe.
func (a *App) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

package backendclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	backenddomain "github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/domain"
	"github.com/vfg2006/weathertrigger-console/pkg/log"
)

// do envia a requisição e decodifica a resposta em out (quando não nil)
func (c *BackendClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "erro ao serializar corpo da requisição")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.Wrapf(err, "erro ao criar requisição %s %s", method, path)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	if c.tokens != nil {
		token, err := c.tokens.AccessToken(ctx)
		if err != nil {
			c.logger.WithError(err).Warn("Não foi possível ler o token de acesso")
		} else if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &backenddomain.APIError{
			Message: "Network connection failed",
			Path:    path,
			Network: true,
			Err:     errors.Wrapf(err, "%s %s", method, path),
		}
	}
	defer resp.Body.Close()

	return c.HandleResponse(ctx, path, resp, out)
}

// HandleResponse trata status, envelope e o 401 global
func (c *BackendClient) HandleResponse(ctx context.Context, path string, resp *http.Response, out any) error {
	// lê um byte além do limite para distinguir corpo exato de corpo truncado
	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return &backenddomain.APIError{
			Message: "failed to read response",
			Status:  resp.StatusCode,
			Path:    path,
			Network: true,
			Err:     err,
		}
	}
	if int64(len(raw)) > c.maxBody {
		c.logger.WithFields(log.Fields{
			"path":      path,
			"max_bytes": c.maxBody,
		}).Error("Resposta do backend excede o limite")

		return &backenddomain.APIError{
			Message: "Response too large",
			Status:  http.StatusBadGateway,
			Path:    path,
		}
	}

	isJSON := strings.Contains(resp.Header.Get("Content-Type"), "application/json") && len(bytes.TrimSpace(raw)) > 0

	var envelope backenddomain.Envelope
	hasEnvelope := false
	if isJSON && bytes.HasPrefix(bytes.TrimSpace(raw), []byte("{")) {
		if err := json.Unmarshal(raw, &envelope); err == nil {
			hasEnvelope = envelope.Success != nil
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &backenddomain.APIError{
			Message: http.StatusText(resp.StatusCode),
			Status:  resp.StatusCode,
			Path:    path,
		}
		if envelope.Error != nil {
			if envelope.Error.Message != "" {
				apiErr.Message = envelope.Error.Message
			}
			apiErr.Details = envelope.Error.Details
		}

		c.logger.WithFields(log.Fields{
			"path":        path,
			"status_code": resp.StatusCode,
			"error":       apiErr.Message,
		}).Warn("Backend respondeu com erro")

		if resp.StatusCode == http.StatusUnauthorized {
			c.handleUnauthorized(ctx, path)
		}

		return apiErr
	}

	if hasEnvelope {
		if !*envelope.Success {
			apiErr := &backenddomain.APIError{
				Message: "Request failed",
				Status:  resp.StatusCode,
				Path:    path,
			}
			if envelope.Error != nil {
				if envelope.Error.Message != "" {
					apiErr.Message = envelope.Error.Message
				}
				apiErr.Details = envelope.Error.Details
			}
			return apiErr
		}
		return decodeInto(envelope.Data, out)
	}

	if !isJSON {
		return nil
	}

	return decodeInto(raw, out)
}

func (c *BackendClient) handleUnauthorized(ctx context.Context, path string) {
	if c.tokens != nil {
		if err := c.tokens.Clear(ctx); err != nil {
			c.logger.WithError(err).Error("Erro ao limpar tokens após 401")
		}
	}

	if h := c.unauthorizedHandler(); h != nil {
		h(ctx, path)
	}
}

func decodeInto(raw []byte, out any) error {
	if out == nil || len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrap(err, "erro ao decodificar resposta do backend")
	}
	return nil
}

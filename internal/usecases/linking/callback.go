package linking

import (
	"context"
	"regexp"

	backenddomain "github.com/vfg2006/weathertrigger-console/infrastructure/integrator/backend/domain"
	"github.com/vfg2006/weathertrigger-console/pkg/apiErrors"
)

// códigos reaproveitados significam que a autorização já foi concluída antes
var codeUsedPattern = regexp.MustCompile(`(?i)already been used|authorization code has been used|already processed`)

// CompleteCallback troca o code do OAuth no backend e avisa o handshake pela bus.
// Sem handshake escutando, o resultado vira toast.
func (s *Store) CompleteCallback(ctx context.Context, code, state string) error {
	if code == "" {
		err := NewLinkError(ErrMissingCode, apiErrors.ErrMissingRequiredData, "Missing code")
		s.publishOrToast(Message{Type: MessageAuthError, Message: err.Message}, "Meta connection failed", err.Message)
		return err
	}

	_, err := s.backend.MetaAuthCallback(ctx, backenddomain.AuthCallbackRequest{
		Code:        code,
		State:       state,
		RedirectURI: s.redirectURI,
	})
	if err == nil {
		s.publishOrToast(Message{Type: MessageAuthSuccess}, "Meta connected", "Your account is now linked.")
		return nil
	}

	message := err.Error()
	if message == "" {
		message = "Connection failed"
	}

	if codeUsedPattern.MatchString(message) {
		s.logger.Info("Código OAuth já utilizado, tratando como sucesso")
		delivered := s.bus.Publish(Message{Type: MessageAuthSuccess, Message: "Authorization already completed", Origin: s.origin})
		if delivered == 0 {
			s.notifier.Info("", "Your Meta account appears already connected.")
		}
		return nil
	}

	s.logger.WithError(err).Error("Falha no callback do OAuth do Meta")
	s.publishOrToast(Message{Type: MessageAuthError, Message: message}, "Meta connection failed", message)
	return err
}

func (s *Store) publishOrToast(msg Message, title, text string) {
	msg.Origin = s.origin
	if s.bus.Publish(msg) > 0 {
		return
	}

	if msg.Type == MessageAuthSuccess {
		s.notifier.Success(title, text)
		return
	}
	s.notifier.Error(title, text)
}

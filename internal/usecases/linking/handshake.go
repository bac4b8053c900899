package linking

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/weathertrigger-console/pkg/apiErrors"
	"github.com/vfg2006/weathertrigger-console/pkg/log"
)

// Popup é a janela aberta para o consentimento do Meta
type Popup interface {
	Closed() bool
	Close()
}

// PopupOpener abre a URL de autorização; popup nil sem erro significa bloqueado
type PopupOpener interface {
	Open(ctx context.Context, authURL string) (Popup, error)
}

// Handshake acompanha um fluxo OAuth em andamento
type Handshake struct {
	AuthURL string
	State   string

	done   chan struct{}
	cancel context.CancelFunc

	mu  sync.Mutex
	err error
}

// Done fecha quando o fluxo termina por qualquer motivo
func (h *Handshake) Done() <-chan struct{} {
	return h.done
}

// Err devolve o motivo do término; nil significa conectado
func (h *Handshake) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

func (h *Handshake) Cancel() {
	h.cancel()
}

func (h *Handshake) finished() bool {
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

func (h *Handshake) finish(err error) {
	h.mu.Lock()
	h.err = err
	h.mu.Unlock()
	close(h.done)
}

// Connect inicia o OAuth do Meta. O handshake termina com sucesso, erro enviado pela
// janela de callback, popup fechado, timeout ou cancelamento de ctx.
func (s *Store) Connect(ctx context.Context, opener PopupOpener) (*Handshake, error) {
	hctx, cancel := context.WithCancel(ctx)
	h := &Handshake{done: make(chan struct{}), cancel: cancel}

	s.mu.Lock()
	if s.handshake != nil && !s.handshake.finished() {
		s.mu.Unlock()
		cancel()
		return nil, NewLinkError(ErrHandshakeInProgress, apiErrors.ErrHandshakeInProgress, "Meta connection already in progress")
	}
	s.handshake = h
	s.status = StatusConnecting
	s.mu.Unlock()

	auth, err := s.backend.GetMetaAuthURL(ctx, s.redirectURI)
	if err != nil {
		s.failStart(h, err)
		return nil, err
	}

	// assina antes de abrir o popup para não perder uma resposta rápida
	messages, unsubscribe := s.bus.Subscribe()

	popup, err := opener.Open(ctx, auth.AuthURL)
	if err == nil && popup == nil {
		err = errPopupBlocked()
	}
	if err != nil {
		unsubscribe()
		s.failStart(h, err)
		return nil, err
	}

	h.AuthURL = auth.AuthURL
	h.State = auth.State

	s.logger.Info("Fluxo OAuth do Meta iniciado")

	go s.runHandshake(hctx, h, popup, messages, unsubscribe)

	return h, nil
}

func (s *Store) failStart(h *Handshake, err error) {
	h.cancel()
	h.finish(err)

	message := err.Error()
	if message == "" {
		message = "Could not start Meta authentication"
	}

	s.logger.WithError(err).Error("Falha ao iniciar OAuth do Meta")

	s.mu.Lock()
	s.err = message
	s.status = StatusIdle
	s.mu.Unlock()

	s.notifier.Error("", message)
}

// runHandshake é o único dono do estado do fluxo; nenhuma outra goroutine o altera
func (s *Store) runHandshake(ctx context.Context, h *Handshake, popup Popup, messages <-chan Message, unsubscribe func()) {
	defer h.cancel()
	defer unsubscribe()

	poll := time.NewTicker(s.pollInterval)
	defer poll.Stop()
	timeout := time.NewTimer(s.oauthTimeout)
	defer timeout.Stop()

	for {
		select {
		case <-ctx.Done():
			s.resetConnecting()
			h.finish(ctx.Err())
			return

		case msg := <-messages:
			if s.handleMessage(ctx, h, msg) {
				return
			}

		case <-poll.C:
			if !popup.Closed() {
				continue
			}
			// a janela fecha logo após postar o resultado; processa o que já chegou
			if s.drainMessages(ctx, h, messages) {
				return
			}
			s.logger.Info("Popup do OAuth fechado pelo usuário")
			s.resetConnecting()
			h.finish(ErrPopupClosed)
			return

		case <-timeout.C:
			s.logger.Warn("Tempo do OAuth do Meta esgotado")
			if !popup.Closed() {
				popup.Close()
			}
			s.SetStatus(StatusIdle)
			err := errHandshakeTimeout()
			s.notifier.Error("", err.Message)
			h.finish(err)
			return
		}
	}
}

// handleMessage devolve true quando a mensagem encerra o fluxo
func (s *Store) handleMessage(ctx context.Context, h *Handshake, msg Message) bool {
	if msg.Origin != s.origin {
		s.logger.WithField("origin", msg.Origin).Debug("Mensagem OAuth de outra origem ignorada")
		return false
	}

	switch msg.Type {
	case MessageAuthSuccess:
		h.finish(s.completeHandshake(ctx))
		return true

	case MessageAuthError:
		message := msg.Message
		if message == "" {
			message = "Meta authentication failed"
		}
		s.logger.WithField("message", message).Warn("OAuth do Meta recusado")

		s.mu.Lock()
		s.err = message
		s.status = StatusIdle
		s.mu.Unlock()

		s.notifier.Error("", message)
		h.finish(NewLinkError(ErrAuthFailed, apiErrors.ErrExternalService, message))
		return true
	}

	return false
}

func (s *Store) drainMessages(ctx context.Context, h *Handshake, messages <-chan Message) bool {
	for {
		select {
		case msg := <-messages:
			if s.handleMessage(ctx, h, msg) {
				return true
			}
		default:
			return false
		}
	}
}

// completeHandshake roda uma única vez por fluxo; mensagens seguintes são descartadas com a inscrição
func (s *Store) completeHandshake(ctx context.Context) error {
	s.logger.Info("OAuth do Meta concluído, carregando contas")

	if err := s.RefreshConnection(ctx); err != nil {
		s.logger.WithError(err).Error("Conta conectada mas falhou ao carregar detalhes")
		s.notifier.Error("", "Account connected but failed to load details. Please refresh the page.")
		s.SetStatus(StatusError)
		return errors.Wrap(err, "refresh after meta auth")
	}

	s.notifier.Success("Connected", "Your Meta account is now linked.")
	s.SetStatus(StatusConnected)

	s.logger.WithFields(log.Fields{
		"ad_accounts_count": len(s.State().AdAccounts),
	}).Info("Conta Meta vinculada")

	return nil
}

func (s *Store) resetConnecting() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == StatusConnecting {
		s.status = StatusIdle
	}
}

// ActiveHandshake devolve o fluxo em andamento, se houver
func (s *Store) ActiveHandshake() (*Handshake, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.handshake == nil || s.handshake.finished() {
		return nil, false
	}
	return s.handshake, true
}

package handler

import (
	"context"
	"sync"

	"github.com/vfg2006/weathertrigger-console/internal/usecases/linking"
)

// ExternalPopup é a janela de consentimento aberta pelo navegador do usuário.
// O console só sabe que ela fechou quando a página de callback carrega ou
// quando o cliente cancela a conexão.
type ExternalPopup struct {
	URL string

	mu     sync.Mutex
	closed bool
}

func (p *ExternalPopup) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

func (p *ExternalPopup) Close() {
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
}

// PopupOpener entrega a URL de autorização para o cliente HTTP abrir
type PopupOpener struct {
	mu      sync.Mutex
	current *ExternalPopup
}

func NewPopupOpener() *PopupOpener {
	return &PopupOpener{}
}

func (o *PopupOpener) Open(_ context.Context, authURL string) (linking.Popup, error) {
	popup := &ExternalPopup{URL: authURL}

	o.mu.Lock()
	o.current = popup
	o.mu.Unlock()

	return popup, nil
}

// CloseCurrent marca a janela atual como fechada; devolve false se não havia janela aberta
func (o *PopupOpener) CloseCurrent() bool {
	o.mu.Lock()
	popup := o.current
	o.current = nil
	o.mu.Unlock()

	if popup == nil || popup.Closed() {
		return false
	}
	popup.Close()
	return true
}

package linking

import "sync"

type MessageType string

const (
	MessageAuthSuccess MessageType = "META_AUTH_SUCCESS"
	MessageAuthError   MessageType = "META_AUTH_ERROR"
)

// Message é o aviso que a janela de callback envia para quem iniciou o OAuth
type Message struct {
	Type    MessageType `json:"type"`
	Message string      `json:"message,omitempty"`
	Origin  string      `json:"-"`
}

const subscriberBuffer = 8

// Bus entrega mensagens entre a janela de callback e o handshake em andamento
type Bus struct {
	mu   sync.Mutex
	subs map[int]chan Message
	next int
}

func NewBus() *Bus {
	return &Bus{subs: make(map[int]chan Message)}
}

// Subscribe devolve o canal de mensagens e a função que cancela a inscrição
func (b *Bus) Subscribe() (<-chan Message, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	ch := make(chan Message, subscriberBuffer)
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
		})
	}
}

// Publish nunca bloqueia; assinantes com buffer cheio perdem a mensagem.
// Devolve quantos assinantes receberam.
func (b *Bus) Publish(msg Message) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	delivered := 0
	for _, ch := range b.subs {
		select {
		case ch <- msg:
			delivered++
		default:
		}
	}
	return delivered
}

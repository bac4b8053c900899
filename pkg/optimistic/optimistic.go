// Package optimistic implementa a transação snapshot, aplica, chamada remota e
// restauração usada pelos stores que alteram o estado local antes da
// confirmação do backend.
package optimistic

import "context"

// State é o estado local que participa de uma transação otimista.
// Snapshot deve devolver uma cópia profunda; Restore recoloca exatamente essa cópia.
type State[S any] interface {
	Snapshot() S
	Restore(S)
}

// Tx descreve uma mutação otimista
type Tx[R any] struct {
	// Apply altera o estado local antes da chamada remota
	Apply func()
	// Remote executa a chamada ao backend
	Remote func(ctx context.Context) (R, error)
	// Commit é chamado após sucesso, já com o resultado remoto
	Commit func(R)
	// Rollback é chamado após a restauração do snapshot
	Rollback func(error)
}

// Run executa a transação. Em caso de falha o estado volta exatamente ao snapshot
// tirado antes de Apply.
func Run[S any, R any](ctx context.Context, state State[S], tx Tx[R]) (R, error) {
	snapshot := state.Snapshot()

	if tx.Apply != nil {
		tx.Apply()
	}

	result, err := tx.Remote(ctx)
	if err != nil {
		state.Restore(snapshot)
		if tx.Rollback != nil {
			tx.Rollback(err)
		}
		var zero R
		return zero, err
	}

	if tx.Commit != nil {
		tx.Commit(result)
	}

	return result, nil
}

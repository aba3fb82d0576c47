// Package warehousing persiste os lotes limpos no warehouse. A carga
// inteira roda dentro de uma única transação: uma falha no meio deixa
// o estado anterior intacto.
package warehousing

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/vfg2006/finance-insights/infrastructure/database/sqlstore"
	"github.com/vfg2006/finance-insights/infrastructure/repository"
	"github.com/vfg2006/finance-insights/internal/config"
	"github.com/vfg2006/finance-insights/internal/domain"
	"github.com/vfg2006/finance-insights/pkg/log"
)

// LoadResult descreve o estado do warehouse após a carga
type LoadResult struct {
	Mode                string
	OrphanTransactions  int
	TransactionsInStore int
	ClientsInStore      int
}

type Service interface {
	Load(ctx context.Context, mode string, transactions []*domain.Transaction, clients []*domain.Client) (*LoadResult, error)
}

type service struct {
	conn            sqlstore.Conn
	transactionRepo repository.TransactionRepository
	clientRepo      repository.ClientRepository
}

func NewService(
	conn sqlstore.Conn,
	transactionRepo repository.TransactionRepository,
	clientRepo repository.ClientRepository,
) Service {
	return &service{
		conn:            conn,
		transactionRepo: transactionRepo,
		clientRepo:      clientRepo,
	}
}

// Load grava clientes e transações no modo pedido. Em replace o
// conteúdo anterior é apagado na mesma transação da escrita; em append
// os registros novos se sobrepõem aos antigos por id (a carga mais
// recente vence). Transações que referenciam clientes desconhecidos
// ficam no warehouse, apenas sinalizadas.
func (s *service) Load(
	ctx context.Context,
	mode string,
	transactions []*domain.Transaction,
	clients []*domain.Client,
) (*LoadResult, error) {
	if mode != config.LoadModeAppend && mode != config.LoadModeReplace {
		return nil, fmt.Errorf("modo de carga inválido: %q", mode)
	}

	var orphans int64

	err := s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if mode == config.LoadModeReplace {
			if err := s.transactionRepo.DeleteAll(tx); err != nil {
				return err
			}
			if err := s.clientRepo.DeleteAll(tx); err != nil {
				return err
			}
		}

		if err := s.clientRepo.UpsertBatch(tx, clients); err != nil {
			return err
		}

		if err := s.transactionRepo.UpsertBatch(tx, transactions); err != nil {
			return err
		}

		flagged, err := s.transactionRepo.FlagMissingClients(tx)
		if err != nil {
			return err
		}
		orphans = flagged

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("erro na carga do warehouse: %w", err)
	}

	transactionCount, err := s.transactionRepo.Count()
	if err != nil {
		return nil, err
	}

	clientCount, err := s.clientRepo.Count()
	if err != nil {
		return nil, err
	}

	if orphans > 0 {
		log.ForContext(ctx).Warnf("%d transações referenciam clientes desconhecidos", orphans)
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"mode":         mode,
		"transactions": transactionCount,
		"clients":      clientCount,
		"orphans":      orphans,
	}).Info("Carga do warehouse concluída")

	return &LoadResult{
		Mode:                mode,
		OrphanTransactions:  int(orphans),
		TransactionsInStore: transactionCount,
		ClientsInStore:      clientCount,
	}, nil
}

package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vfg2006/finance-insights/internal/domain"
)

// TransactionLoader extrai linhas brutas da planilha de transações.
// Nenhuma validação semântica acontece aqui: linha lida é linha
// entregue, mesmo truncada ou sem campos.
type TransactionLoader interface {
	Load(path string) ([]*domain.RawTransaction, error)
}

// ClientLoader extrai registros brutos do arquivo de clientes
type ClientLoader interface {
	Load(path string) ([]*domain.RawClient, error)
}

// NewTransactionLoader escolhe o extrator pela extensão do arquivo
func NewTransactionLoader(path string) (TransactionLoader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xls":
		return NewExcelTransactionLoader(), nil
	default:
		return nil, fmt.Errorf("extensão não suportada para transações: %q", filepath.Ext(path))
	}
}

// NewClientLoader escolhe o extrator pela extensão do arquivo
func NewClientLoader(path string) (ClientLoader, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonl":
		return NewJSONClientLoader(), nil
	default:
		return nil, fmt.Errorf("extensão não suportada para clientes: %q", filepath.Ext(path))
	}
}

func checkSourceFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("arquivo de origem não encontrado: %s", path)
		}
		return fmt.Errorf("erro ao acessar o arquivo de origem: %w", err)
	}

	if info.IsDir() {
		return fmt.Errorf("o caminho de origem é um diretório: %s", path)
	}

	if info.Size() == 0 {
		return fmt.Errorf("arquivo de origem vazio: %s", path)
	}

	return nil
}

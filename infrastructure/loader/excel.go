package loader

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/vfg2006/finance-insights/internal/domain"
	"github.com/vfg2006/finance-insights/pkg/log"
)

// Colunas obrigatórias da planilha de transações
var requiredColumns = []string{
	"transaction_id",
	"client_id",
	"transaction_date",
	"service",
	"amount",
	"payment_method",
	"city",
	"consultant",
}

type excelTransactionLoader struct{}

func NewExcelTransactionLoader() TransactionLoader {
	return &excelTransactionLoader{}
}

// Load lê a primeira planilha do arquivo e devolve cada linha como
// registro bruto. O cabeçalho define a posição das colunas, então a
// ordem na planilha não importa.
func (l *excelTransactionLoader) Load(path string) ([]*domain.RawTransaction, error) {
	if err := checkSourceFile(path); err != nil {
		return nil, err
	}

	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao abrir a planilha %s: %w", path, err)
	}
	defer file.Close()

	sheets := file.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("planilha sem abas: %s", path)
	}

	rows, err := file.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a aba %q: %w", sheets[0], err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("planilha sem linhas: %s", path)
	}

	columnMap, err := mapColumns(rows[0])
	if err != nil {
		return nil, err
	}

	transactions := make([]*domain.RawTransaction, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}

		// +2: pula o cabeçalho e converte para numeração 1-based da planilha
		transactions = append(transactions, &domain.RawTransaction{
			ID:            cellAt(row, columnMap["transaction_id"]),
			ClientID:      cellAt(row, columnMap["client_id"]),
			Date:          cellAt(row, columnMap["transaction_date"]),
			Amount:        cellAt(row, columnMap["amount"]),
			Service:       cellAt(row, columnMap["service"]),
			City:          cellAt(row, columnMap["city"]),
			PaymentMethod: cellAt(row, columnMap["payment_method"]),
			Consultant:    cellAt(row, columnMap["consultant"]),
			Row:           i + 2,
		})
	}

	log.L.Infof("Extraídas %d linhas de transações de %s", len(transactions), path)

	return transactions, nil
}

// mapColumns localiza cada coluna obrigatória pelo nome no cabeçalho
func mapColumns(header []string) (map[string]int, error) {
	columnMap := make(map[string]int, len(requiredColumns))
	for i, name := range header {
		columnMap[strings.ToLower(strings.TrimSpace(name))] = i
	}

	missing := make([]string, 0)
	for _, column := range requiredColumns {
		if _, ok := columnMap[column]; !ok {
			missing = append(missing, column)
		}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("colunas obrigatórias ausentes na planilha: %s", strings.Join(missing, ", "))
	}

	return columnMap, nil
}

// cellAt devolve a célula na posição, tolerando linhas truncadas pelo
// excelize quando as últimas células estão vazias
func cellAt(row []string, index int) string {
	if index >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[index])
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

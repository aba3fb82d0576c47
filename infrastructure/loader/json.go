package loader

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/vfg2006/finance-insights/internal/domain"
	"github.com/vfg2006/finance-insights/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type jsonClientLoader struct{}

func NewJSONClientLoader() ClientLoader {
	return &jsonClientLoader{}
}

// Load aceita os dois formatos usados pelos arquivos de origem: um
// array JSON de objetos ou JSON-lines (um objeto por linha). Linhas
// malformadas viram registros brutos vazios para o cleaner rejeitar
// com motivo próprio, sem abortar a extração.
func (l *jsonClientLoader) Load(path string) ([]*domain.RawClient, error) {
	if err := checkSourceFile(path); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o arquivo %s: %w", path, err)
	}

	trimmed := bytes.TrimLeft(content, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return l.loadArray(path, content)
	}

	return l.loadLines(path, content)
}

func (l *jsonClientLoader) loadArray(path string, content []byte) ([]*domain.RawClient, error) {
	clients := make([]*domain.RawClient, 0)
	if err := json.Unmarshal(content, &clients); err != nil {
		return nil, fmt.Errorf("erro ao deserializar o array JSON de %s: %w", path, err)
	}

	log.L.Infof("Extraídos %d registros de clientes de %s", len(clients), path)

	return clients, nil
}

func (l *jsonClientLoader) loadLines(path string, content []byte) ([]*domain.RawClient, error) {
	clients := make([]*domain.RawClient, 0)
	malformed := 0

	scanner := bufio.NewScanner(bytes.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		client := &domain.RawClient{}
		if err := json.Unmarshal([]byte(line), client); err != nil {
			malformed++
			clients = append(clients, &domain.RawClient{Malformed: true})
			continue
		}

		clients = append(clients, client)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("erro ao percorrer o arquivo %s: %w", path, err)
	}

	if malformed > 0 {
		log.L.Warnf("%d linhas malformadas em %s", malformed, path)
	}

	log.L.Infof("Extraídos %d registros de clientes de %s", len(clients), path)

	return clients, nil
}

package source

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/callcenter-analytics-api/pkg/log"
	"github.com/vfg2006/callcenter-analytics-api/pkg/utils"
)

// ImportResult descreve o resultado de uma ingestão de ZIP
type ImportResult struct {
	Version  string   `json:"version"`
	Imported []string `json:"imported"`
	Skipped  []string `json:"skipped"`
}

// ImportZip extrai os JSONs de um upload para o diretório de exports.
// Só entram membros cujo nome segue a convenção de facet/mês e cujo conteúdo
// é JSON válido; o resto é listado em Skipped com o motivo implícito no log.
// Uma ingestão bem-sucedida avança a versão do dataset, invalidando o cache.
func (a *FilesystemAdapter) ImportZip(r io.ReaderAt, size int64) (*ImportResult, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, &Error{Kind: KindMalformed, Err: errors.Wrap(err, "abrindo ZIP")}
	}

	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return nil, &Error{Kind: KindIO, Err: errors.Wrap(err, "criando diretório de exports")}
	}

	result := &ImportResult{
		Imported: []string{},
		Skipped:  []string{},
	}

	for _, member := range zr.File {
		name := filepath.Base(member.Name)

		// Artefatos de compactadores (diretórios, __MACOSX, dotfiles)
		if member.FileInfo().IsDir() || strings.HasPrefix(name, ".") || strings.HasPrefix(member.Name, "__MACOSX/") {
			continue
		}

		if _, ok := MonthFromFileName(name); !ok {
			log.L.WithField("member", member.Name).Warn("Membro do ZIP fora da convenção de nomes, ignorando")
			result.Skipped = append(result.Skipped, name)
			continue
		}

		data, err := readZipMember(member)
		if err != nil {
			log.L.WithError(err).WithField("member", member.Name).Warn("Falha lendo membro do ZIP, ignorando")
			result.Skipped = append(result.Skipped, name)
			continue
		}

		if !json.Valid(data) {
			log.L.WithField("member", member.Name).Warn("Membro do ZIP não é JSON válido, ignorando")
			result.Skipped = append(result.Skipped, name)
			continue
		}

		target := filepath.Join(a.dir, name)
		if err := os.WriteFile(target, data, 0o644); err != nil {
			return nil, &Error{Kind: KindIO, Err: errors.Wrapf(err, "gravando %s", name)}
		}

		result.Imported = append(result.Imported, name)
	}

	if len(result.Imported) > 0 {
		version, err := utils.GenerateID()
		if err != nil {
			return nil, errors.Wrap(err, "gerando versão do dataset")
		}

		a.SetVersion(version)
		result.Version = version

		log.L.WithFields(log.Fields{
			"imported": len(result.Imported),
			"skipped":  len(result.Skipped),
			"version":  version,
		}).Info("Ingestão de ZIP concluída")
	}

	return result, nil
}

func readZipMember(member *zip.File) ([]byte, error) {
	rc, err := member.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	return io.ReadAll(rc)
}

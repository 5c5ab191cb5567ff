package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vfg2006/callcenter-analytics-api/infrastructure/source"
	"github.com/vfg2006/callcenter-analytics-api/internal/usecases/aggregating"
	"github.com/vfg2006/callcenter-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/callcenter-analytics-api/pkg/log"
)

// Limite do upload de ZIP: os exports mensais têm poucos MB cada
const maxImportSize = 64 << 20

// ImportDataset recebe um ZIP multipart com exports mensais e o importa para
// o diretório da origem. O campo do formulário se chama "file".
func ImportDataset(adapter *source.FilesystemAdapter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		// MaxBytesReader limita o corpo inteiro; ParseMultipartForm sozinho
		// só limita o que fica bufferizado em memória
		r.Body = http.MaxBytesReader(w, r.Body, maxImportSize)

		if err := r.ParseMultipartForm(maxImportSize); err != nil {
			logger.WithError(err).Warn("datasets: corpo multipart inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo multipart inválido", nil)
			return
		}

		file, header, err := r.FormFile("file")
		if err != nil {
			logger.WithError(err).Warn("datasets: campo file ausente no formulário")
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "É necessário enviar o arquivo no campo 'file'", nil)
			return
		}
		defer file.Close()

		logger.WithFields(log.Fields{
			"file_name": header.Filename,
			"file_size": header.Size,
		}).Info("datasets: importando ZIP de exports")

		result, err := adapter.ImportZip(file, header.Size)
		if err != nil {
			logger.WithError(err).WithField("file_name", header.Filename).Error("datasets: erro ao importar ZIP")

			if source.IsMalformed(err) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Arquivo ZIP inválido", nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
			return
		}

		logger.WithFields(log.Fields{
			"version":  result.Version,
			"imported": result.Imported,
			"skipped":  result.Skipped,
		}).Info("datasets: ZIP importado com sucesso")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("datasets: erro ao codificar resposta")
		}
	})
}

// GetDetailFacet repassa o conteúdo bruto do 詳細分析 de um mês
func GetDetailFacet(service aggregating.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		month, ok := monthParam(w, r)
		if !ok {
			return
		}

		logger.WithField("month", month).Info("datasets: buscando análise detalhada")

		detail, err := service.GetDetailFacet(month)
		if err != nil {
			logger.WithError(err).WithField("month", month).Error("datasets: erro ao buscar análise detalhada")
			writeServiceError(w, err)
			return
		}

		// Conteúdo repassado como chegou do export, sem reinterpretação
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write(detail); err != nil {
			logger.WithError(err).Error("datasets: erro ao escrever resposta")
		}
	})
}

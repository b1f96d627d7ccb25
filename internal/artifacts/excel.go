package artifacts

import (
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/recrutaml/recruta/internal/dataset"
	"github.com/recrutaml/recruta/internal/trainer"
)

// WriteSummary exports the spreadsheet the recruitment team reviews: one
// sheet per entity table plus a run overview. The CSV artifacts stay the
// machine-readable source of truth; this file is for humans.
func (e *Exporter) WriteSummary(postings *dataset.Postings, candidates *dataset.Candidates, eval trainer.Evaluation) error {
	book := excelize.NewFile()
	defer book.Close()

	if err := writePostingsSheet(book, postings); err != nil {
		return err
	}
	if err := writeCandidatesSheet(book, candidates); err != nil {
		return err
	}
	if err := writeOverviewSheet(book, postings.Len(), candidates.Len(), eval); err != nil {
		return err
	}

	// The default sheet is replaced by the overview.
	if err := book.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("removing default sheet: %w", err)
	}

	if err := book.SaveAs(e.Path(SummaryFile)); err != nil {
		return fmt.Errorf("saving %s: %w", SummaryFile, err)
	}
	e.logger.Info("artifact written", zap.String("file", SummaryFile))
	return nil
}

func setRow(book *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return book.SetSheetRow(sheet, cell, &values)
}

func writePostingsSheet(book *excelize.File, postings *dataset.Postings) error {
	const sheet = "Vagas"
	if _, err := book.NewSheet(sheet); err != nil {
		return fmt.Errorf("creating sheet %s: %w", sheet, err)
	}
	header := []any{"ID", "Título", "Cliente", "Categoria", "Modalidade", "Inglês", "Espanhol"}
	if err := setRow(book, sheet, 1, header); err != nil {
		return err
	}
	for i, posting := range postings.Items {
		values := []any{
			posting.ID, posting.Title, posting.Client, posting.Category,
			posting.Modality, posting.EnglishLevel, posting.SpanishLevel,
		}
		if err := setRow(book, sheet, i+2, values); err != nil {
			return err
		}
	}
	return nil
}

func writeCandidatesSheet(book *excelize.File, candidates *dataset.Candidates) error {
	const sheet = "Candidatos"
	if _, err := book.NewSheet(sheet); err != nil {
		return fmt.Errorf("creating sheet %s: %w", sheet, err)
	}
	header := []any{"ID", "Nome", "Categoria", "Nível Acadêmico", "Nível Profissional", "Inglês", "Espanhol"}
	if err := setRow(book, sheet, 1, header); err != nil {
		return err
	}
	for i, candidate := range candidates.Items {
		values := []any{
			candidate.ID, candidate.Name, candidate.Category, candidate.AcademicLevelClean,
			candidate.ProfessionalLevelClean, candidate.EnglishLevel, candidate.SpanishLevel,
		}
		if err := setRow(book, sheet, i+2, values); err != nil {
			return err
		}
	}
	return nil
}

func writeOverviewSheet(book *excelize.File, postings, candidates int, eval trainer.Evaluation) error {
	const sheet = "Resumo"
	if _, err := book.NewSheet(sheet); err != nil {
		return fmt.Errorf("creating sheet %s: %w", sheet, err)
	}
	rows := [][]any{
		{"Métrica", "Valor"},
		{"Vagas processadas", postings},
		{"Candidatos processados", candidates},
		{"Linhas de treino", eval.TrainRows},
		{"Linhas de teste", eval.TestRows},
		{"Acurácia", eval.Accuracy},
		{"Taxa de positivos", eval.PositiveRate},
	}
	for i, values := range rows {
		if err := setRow(book, sheet, i+1, values); err != nil {
			return err
		}
	}
	return nil
}

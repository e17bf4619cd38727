package enrollments

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"

	"speaksmart/internal/api"
	"speaksmart/internal/database"
	"speaksmart/internal/model"
)

const (
	sheetName = "Iscrizioni"
	mimeXLSX  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var exportHeader = []any{"ID", "Nome", "Email", "Telefono", "Età", "Edizione", "Obiettivi", "Esperienza", "Data iscrizione"}

func deref[T any](p *T) any {
	if p == nil {
		return ""
	}
	return *p
}

// buildWorkbook writes one header row and one row per enrollment.
func buildWorkbook(rows []model.Enrollment) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}
	if err := f.SetSheetRow(sheetName, "A1", &exportHeader); err != nil {
		return nil, err
	}
	for i, en := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{
			en.ID,
			en.Nome,
			en.Email,
			deref(en.Telefono),
			deref(en.Eta),
			en.Edizione,
			deref(en.Obiettivi),
			deref(en.Esperienza),
			en.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, err
		}
	}
	if err := f.SetPanes(sheetName, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return nil, err
	}
	return f.WriteToBuffer()
}

// @Summary     Export enrollments
// @Description Scarica tutte le iscrizioni come foglio Excel. Solo docenti.
// @Tags        iscrizioni
// @Produce     application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success     200 {file}   file
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    BearerAuth
// @Router      /iscrizioni/export [get]
func ExportEnrollmentsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := zerolog.Ctx(ctx)

		rows, err := listEnrollments(ctx, db)
		if err != nil {
			log.Error().Err(err).Msg("export enrollments: list")
			return c.JSON(http.StatusInternalServerError, api.Fail(api.MsgEnrollmentExport))
		}
		buf, err := buildWorkbook(rows)
		if err != nil {
			log.Error().Err(err).Msg("export enrollments: workbook")
			return c.JSON(http.StatusInternalServerError, api.Fail(api.MsgEnrollmentExport))
		}

		c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", "iscrizioni.xlsx"))
		return c.Blob(http.StatusOK, mimeXLSX, buf.Bytes())
	}
}

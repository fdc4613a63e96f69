package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/erp/mfgdesk/internal/infrastructure/export"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// writeWorkbook streams sheet as an attachment named <base>-<date>.xlsx
func (h *BaseHandler) writeWorkbook(c *gin.Context, base string, sheet *export.Sheet) {
	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, *sheet); err != nil {
		h.HandleError(c, err)
		return
	}
	filename := fmt.Sprintf("%s-%s.xlsx", strings.ToLower(base), time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

package adminController

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/charandeep-reddy/food-login/apierror"
	"github.com/charandeep-reddy/food-login/store"
)

// GET /admin/orders/export — the full order book as an Excel workbook.
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := store.AllOrders(db)
		if err != nil {
			apierror.JSON(c, http.StatusInternalServerError, apierror.KindInternal, "Failed to fetch orders")
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			apierror.JSON(c, http.StatusInternalServerError, apierror.KindInternal, "Failed to create Excel sheet")
			return
		}

		headers := []string{
			"ID", "Customer", "Email", "Items", "Total", "Status",
			"PaymentID", "Address", "Phone", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.User.Name)
			row.AddCell().SetValue(o.User.Email)

			var lines []string
			for _, li := range o.Items {
				lines = append(lines, fmt.Sprintf("%s x%d", li.Name, li.Quantity))
			}
			row.AddCell().SetValue(strings.Join(lines, ", "))

			row.AddCell().SetValue(o.Total)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(o.PaymentID)
			row.AddCell().SetValue(o.Address)
			row.AddCell().SetValue(o.Phone)
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")

		if err := file.Write(c.Writer); err != nil {
			apierror.JSON(c, http.StatusInternalServerError, apierror.KindInternal, "Failed to write Excel file")
			return
		}
	}
}

package receiptControllers

import (
	"bytes"
	"html/template"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	wkhtmltopdf "github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/gin-gonic/gin"
)

type ReceiptLineInput struct {
	Name     string  `json:"name" binding:"required"`
	Quantity int     `json:"qty" binding:"required,min=1"`
	Price    float64 `json:"price"`
	Subtotal float64 `json:"subtotal"`
	Image    string  `json:"image"`
}

// DownloadReceiptInput is the checkout receipt echoed back by the client.
type DownloadReceiptInput struct {
	Orders   []ReceiptLineInput `json:"orders" binding:"required,min=1,dive"`
	Total    float64            `json:"total"`
	Nickname string             `json:"nickname"`
	Username string             `json:"username" binding:"required"`
}

type receiptLineView struct {
	Name     string
	Quantity int
	Price    float64
	Subtotal float64
	ImageURL string
}

type receiptView struct {
	Nickname string
	Username string
	Lines    []receiptLineView
	Total    float64
}

var receiptTmpl = template.Must(template.New("receipt").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
body { font-family: Helvetica, Arial, sans-serif; }
h1 { font-size: 20px; }
table { width: 100%; border-collapse: collapse; }
th, td { border: 1px solid #444; padding: 6px 10px; text-align: left; }
tr.total td { font-weight: bold; }
img { height: 48px; }
</style>
</head>
<body>
<h1>Order Receipt</h1>
<p>Customer: {{.Nickname}} ({{.Username}})</p>
<table>
<tr><th>Item</th><th>Image</th><th>Qty</th><th>Unit Price</th><th>Subtotal</th></tr>
{{range .Lines}}<tr>
<td>{{.Name}}</td>
<td>{{if .ImageURL}}<img src="{{.ImageURL}}">{{end}}</td>
<td>{{.Quantity}}</td>
<td>{{printf "%.2f" .Price}}</td>
<td>{{printf "%.2f" .Subtotal}}</td>
</tr>
{{end}}<tr class="total"><td colspan="4">Total</td><td>{{printf "%.2f" .Total}}</td></tr>
</table>
</body>
</html>`))

// StaticDir is where catalog images live on disk; wkhtmltopdf reads them
// over file:// URLs.
func StaticDir() string {
	if dir := os.Getenv("STATIC_DIR"); dir != "" {
		return dir
	}
	return "./static"
}

func imageFileURL(image string) string {
	if image == "" {
		return ""
	}
	abs, err := filepath.Abs(filepath.Join(StaticDir(), "images", image))
	if err != nil {
		return ""
	}
	return "file:///" + strings.TrimPrefix(filepath.ToSlash(abs), "/")
}

// BuildReceiptHTML renders the printable receipt document fed to the PDF
// converter.
func BuildReceiptHTML(input DownloadReceiptInput) (string, error) {
	lines := make([]receiptLineView, 0, len(input.Orders))
	for _, o := range input.Orders {
		lines = append(lines, receiptLineView{
			Name:     o.Name,
			Quantity: o.Quantity,
			Price:    o.Price,
			Subtotal: o.Subtotal,
			ImageURL: imageFileURL(o.Image),
		})
	}

	var buf bytes.Buffer
	if err := receiptTmpl.Execute(&buf, receiptView{
		Nickname: input.Nickname,
		Username: input.Username,
		Lines:    lines,
		Total:    input.Total,
	}); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// POST /download_receipt
// Thin wrapper around wkhtmltopdf: A4 pages, 0.75in margins, local file
// access for item images, attachment disposition on the way out. The binary
// path comes from WKHTMLTOPDF_PATH when set.
func DownloadReceipt() gin.HandlerFunc {
	return func(c *gin.Context) {
		var input DownloadReceiptInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid receipt data: " + err.Error()})
			return
		}

		html, err := BuildReceiptHTML(input)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render receipt"})
			return
		}

		if path := os.Getenv("WKHTMLTOPDF_PATH"); path != "" {
			wkhtmltopdf.SetPath(path)
		}
		pdfg, err := wkhtmltopdf.NewPDFGenerator()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "PDF converter unavailable"})
			return
		}

		// 0.75in ~ 19mm
		pdfg.PageSize.Set(wkhtmltopdf.PageSizeA4)
		pdfg.MarginTop.Set(19)
		pdfg.MarginBottom.Set(19)
		pdfg.MarginLeft.Set(19)
		pdfg.MarginRight.Set(19)
		pdfg.NoOutline.Set(true)

		page := wkhtmltopdf.NewPageReader(strings.NewReader(html))
		page.EnableLocalFileAccess.Set(true)
		page.Allow.Set(StaticDir())
		page.Encoding.Set("utf-8")
		pdfg.AddPage(page)

		if err := pdfg.Create(); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
			return
		}

		c.Header("Content-Disposition", "attachment; filename=receipt.pdf")
		c.Data(http.StatusOK, "application/pdf", pdfg.Bytes())
	}
}

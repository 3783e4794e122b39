package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"jadwal/payroll-processor/database"
	"jadwal/payroll-processor/importer"
	"jadwal/payroll-processor/models"
	"jadwal/payroll-processor/payroll"
	"jadwal/payroll-processor/service"
	"jadwal/payroll-processor/service/workbook"
	"jadwal/payroll-processor/sftp"
)

func main() {
	filePath := flag.String("file", "", "path to the payroll workbook (.xlsx); empty fetches from the SFTP drop")
	sheetName := flag.String("sheet", "", "worksheet name; empty reads the first sheet")
	period := flag.String("period", "", "payroll period YYYY-MM; empty uses the previous month")
	preview := flag.Bool("preview", false, "parse only, print the first rows and exit")
	errorsCSV := flag.String("errors-csv", "", "write the error report CSV to this path")
	summaryPDF := flag.String("summary-pdf", "", "write the run summary PDF to this path")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %v", err)
	}

	runPeriod := *period
	if runPeriod == "" {
		runPeriod = service.PreviousPeriod()
	}
	if _, err := service.ParsePeriod(runPeriod); err != nil {
		log.Fatal(err)
	}

	sheet, err := loadSheet(*filePath, *sheetName, runPeriod)
	if err != nil {
		log.Fatal(err)
	}

	if *preview {
		result, err := importer.Preview(sheet)
		if err != nil {
			log.Fatal(err)
		}
		printPreview(result)
		return
	}

	db, err := database.Connect(os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatalf("failed to setup database: %v", err)
	}

	opts := importer.Options{
		Period:               runPeriod,
		LegacyExperienceRate: envFloat("LEGACY_EXPERIENCE_RATE"),
	}

	result, err := importer.New(database.NewStore(db)).Run(context.Background(), sheet, opts)
	if err != nil {
		log.Fatal(err)
	}

	if *errorsCSV != "" {
		if err := writeErrorReport(result, *errorsCSV); err != nil {
			log.Errorf("failed to write error report: %v", err)
		}
	}

	if *summaryPDF != "" {
		if err := writeSummaryPDF(result, runPeriod, *summaryPDF); err != nil {
			log.Errorf("failed to write summary pdf: %v", err)
		}
	}

	if !result.Success {
		os.Exit(1)
	}
}

// loadSheet reads the workbook from disk, or downloads it from the SFTP
// drop when no local path is given.
func loadSheet(filePath, sheetName, period string) (*workbook.Sheet, error) {
	if filePath != "" {
		return workbook.Load(filePath, sheetName)
	}

	server := os.Getenv("SFTP_SERVER")
	if server == "" {
		return nil, fmt.Errorf("no -file given and SFTP_SERVER is not set")
	}

	config := sftp.Config{
		Username: os.Getenv("SFTP_USER"),
		Password: os.Getenv("SFTP_PASSWORD"),
		Server:   server,
		Timeout:  30 * time.Second,
	}

	if keyFile := os.Getenv("SFTP_KEY_FILE"); keyFile != "" {
		pk, err := os.ReadFile(keyFile)
		if err != nil {
			return nil, fmt.Errorf("read sftp key: %w", err)
		}
		config.PrivateKey = string(pk)
	}

	client, err := sftp.New(config)
	if err != nil {
		return nil, err
	}
	defer client.Close()

	remotePath := fmt.Sprintf("%s/payroll_%s.xlsx", os.Getenv("SFTP_REMOTE_DIR"), period)
	log.Infof("downloading %s from %s", remotePath, server)

	file, err := client.Download(remotePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return workbook.LoadReader(file, sheetName)
}

func printPreview(result *models.PreviewResult) {
	fmt.Printf("header row: %d, rows: %d, valid: %d, scale found: %v\n",
		result.Summary.HeaderRow, result.Summary.TotalRows, result.Summary.ValidRows, result.Summary.ScaleFound)

	for _, emp := range result.Preview {
		fmt.Printf("%4d  %-8s %-30s base %.2f total allowances %.2f net %.2f\n",
			emp.RowNumber, emp.EmployeeNo, emp.FullName, emp.BasePay, emp.TotalAllowances, emp.Net)
	}

	for _, msg := range result.Errors {
		fmt.Printf("error: %s\n", msg)
	}
}

func writeErrorReport(result *models.ImportResult, path string) error {
	rows := payroll.BuildErrorReport(result)
	if len(rows) == 0 {
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return rows.ToCSV(f)
}

func writeSummaryPDF(result *models.ImportResult, period, path string) error {
	report := fmt.Sprintf(
		"Payroll import %s\nBatch %s\n\nRows: %d\nAdded: %d\nUpdated: %d\nSkipped: %d\nErrors: %d\nSalary scale found: %v\n",
		period, result.BatchID,
		result.Summary.TotalRows, result.Summary.Added, result.Summary.Updated,
		result.Summary.Skipped, result.Summary.Errors, result.ScaleFound,
	)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 16)
	pdf.MultiCell(0, 10, report, "", "", false)

	return pdf.OutputFileAndClose(path)
}

func envFloat(name string) float64 {
	raw := os.Getenv(name)
	if raw == "" {
		return 0
	}

	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Warnf("ignoring non-numeric %s=%q", name, raw)
		return 0
	}
	return val
}

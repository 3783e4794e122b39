// Preview parses a payroll workbook without writing anything, so a
// sheet can be checked before it is imported.
package main

import (
	"flag"
	"fmt"

	log "github.com/sirupsen/logrus"

	"jadwal/payroll-processor/importer"
	"jadwal/payroll-processor/service/workbook"
)

func main() {
	sheetName := flag.String("sheet", "", "worksheet name; empty reads the first sheet")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: preview [-sheet name] <workbook.xlsx>")
	}

	sheet, err := workbook.Load(flag.Arg(0), *sheetName)
	if err != nil {
		log.Fatal(err)
	}

	result, err := importer.Preview(sheet)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("header row %d, %d rows, %d valid, scale found: %v\n",
		result.Summary.HeaderRow, result.Summary.TotalRows, result.Summary.ValidRows, result.Summary.ScaleFound)

	for _, emp := range result.Preview {
		fmt.Printf("%4d  %-8s %-30s gross %.2f net %.2f\n",
			emp.RowNumber, emp.EmployeeNo, emp.FullName, emp.Gross, emp.Net)
	}

	for _, msg := range result.Errors {
		fmt.Println("error:", msg)
	}
}

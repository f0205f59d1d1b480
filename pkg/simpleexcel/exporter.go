package simpleexcel

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// Types
// =============================================================================

// DataExporter is the main entry point for exporting data.
type DataExporter struct {
	template *ReportTemplate
	// data holds data bound to specific section IDs (for YAML flow)
	data map[string]interface{}
	// sheets holds manually added sheets (for programmatic flow)
	sheets     []*SheetBuilder
	formatters map[string]FormatterFunc
}

// FormatterFunc converts a cell value before it is written.
type FormatterFunc func(interface{}) interface{}

// ReportTemplate represents the YAML structure.
type ReportTemplate struct {
	Sheets []SheetTemplate `yaml:"sheets"`
}

// SheetTemplate represents a sheet in the YAML.
type SheetTemplate struct {
	Name     string          `yaml:"name"`
	Sections []SectionConfig `yaml:"sections"`
}

// SectionConfig defines a section of data in a sheet.
// Sections are stacked vertically with one blank row between them.
type SectionConfig struct {
	ID          string         `yaml:"id"`
	Title       string         `yaml:"title"`
	Data        interface{}    `yaml:"-"` // Data is bound at runtime
	ShowHeader  bool           `yaml:"show_header"`
	TitleStyle  *StyleTemplate `yaml:"title_style"`
	HeaderStyle *StyleTemplate `yaml:"header_style"`
	Columns     []ColumnConfig `yaml:"columns"`
}

// ColumnConfig defines a column in a section.
type ColumnConfig struct {
	FieldName string  `yaml:"field_name"` // Struct field name (promoted fields included) or map key
	Header    string  `yaml:"header"`
	Width     float64 `yaml:"width"`
	Formatter string  `yaml:"formatter"` // name registered with RegisterFormatter
}

// StyleTemplate defines basic styling.
type StyleTemplate struct {
	Font *FontTemplate `yaml:"font"`
	Fill *FillTemplate `yaml:"fill"`
}

type FontTemplate struct {
	Bold  bool   `yaml:"bold"`
	Color string `yaml:"color"` // Hex color
}

type FillTemplate struct {
	Color string `yaml:"color"` // Hex color
}

// =============================================================================
// Constructors
// =============================================================================

func NewDataExporter() *DataExporter {
	return &DataExporter{
		data:       make(map[string]interface{}),
		sheets:     []*SheetBuilder{},
		formatters: make(map[string]FormatterFunc),
	}
}

// NewDataExporterFromYamlConfig creates an exporter whose sheets come from a YAML template.
func NewDataExporterFromYamlConfig(config string) (*DataExporter, error) {
	var tmpl ReportTemplate
	if err := yaml.Unmarshal([]byte(config), &tmpl); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	e := NewDataExporter()
	e.template = &tmpl
	return e, nil
}

// =============================================================================
// Fluent API
// =============================================================================

// AddSheet starts a new sheet builder.
func (e *DataExporter) AddSheet(name string) *SheetBuilder {
	sb := &SheetBuilder{
		exporter: e,
		name:     name,
		sections: []*SectionConfig{},
	}
	e.sheets = append(e.sheets, sb)
	return sb
}

// BindSectionData binds data to a section ID (for YAML-based export).
func (e *DataExporter) BindSectionData(id string, data interface{}) *DataExporter {
	e.data[id] = data
	return e
}

// RegisterFormatter makes a named formatter available to ColumnConfig.Formatter.
func (e *DataExporter) RegisterFormatter(name string, fn FormatterFunc) *DataExporter {
	e.formatters[name] = fn
	return e
}

// GetSheet returns the sheet with the given name, or nil.
// For a sheet defined in the YAML template, sections added through the returned
// builder are rendered after the template's own sections.
func (e *DataExporter) GetSheet(name string) *SheetBuilder {
	for _, sb := range e.sheets {
		if sb.name == name {
			return sb
		}
	}
	if e.template != nil {
		for _, st := range e.template.Sheets {
			if st.Name == name {
				return e.AddSheet(name)
			}
		}
	}
	return nil
}

type sheetPlan struct {
	name     string
	sections []*SectionConfig
}

// plan merges template and programmatic sheets by name, template sheets first.
func (e *DataExporter) plan() []sheetPlan {
	var plans []sheetPlan
	index := make(map[string]int)
	add := func(name string, sections []*SectionConfig) {
		if i, ok := index[name]; ok {
			plans[i].sections = append(plans[i].sections, sections...)
			return
		}
		index[name] = len(plans)
		plans = append(plans, sheetPlan{name: name, sections: sections})
	}

	if e.template != nil {
		for _, sheetTmpl := range e.template.Sheets {
			sections := make([]*SectionConfig, len(sheetTmpl.Sections))
			for j := range sheetTmpl.Sections {
				sec := sheetTmpl.Sections[j]
				if data, ok := e.data[sec.ID]; ok {
					sec.Data = data
				}
				sections[j] = &sec
			}
			add(sheetTmpl.Name, sections)
		}
	}
	for _, sb := range e.sheets {
		add(sb.name, sb.sections)
	}
	return plans
}

// BuildExcel creates the Excel file in memory. The caller must Close it.
func (e *DataExporter) BuildExcel() (*excelize.File, error) {
	f := excelize.NewFile()

	for i, p := range e.plan() {
		var err error
		if i == 0 {
			err = f.SetSheetName("Sheet1", p.name)
		} else {
			_, err = f.NewSheet(p.name)
		}
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("add sheet %q: %w", p.name, err)
		}
		if err := e.renderSections(f, p.name, p.sections); err != nil {
			f.Close()
			return nil, err
		}
	}

	return f, nil
}

// ToBytes exports the Excel file to an in-memory byte slice.
func (e *DataExporter) ToBytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := e.ToWriter(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToWriter writes the Excel file to the provided io.Writer.
func (e *DataExporter) ToWriter(w io.Writer) error {
	f, err := e.BuildExcel()
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.WriteTo(w)
	return err
}

// =============================================================================
// SheetBuilder
// =============================================================================

type SheetBuilder struct {
	exporter *DataExporter
	name     string
	sections []*SectionConfig
}

func (sb *SheetBuilder) AddSection(config *SectionConfig) *SheetBuilder {
	sb.sections = append(sb.sections, config)
	return sb
}

func (sb *SheetBuilder) Build() *DataExporter {
	return sb.exporter
}

// =============================================================================
// Rendering Logic
// =============================================================================

func (e *DataExporter) renderSections(f *excelize.File, sheet string, sections []*SectionConfig) error {
	currentRow := 1

	for _, sec := range sections {
		// Render Title
		if sec.Title != "" {
			cell, _ := excelize.CoordinatesToCellName(1, currentRow)
			if err := f.SetCellValue(sheet, cell, sec.Title); err != nil {
				return fmt.Errorf("section %q title: %w", sec.ID, err)
			}
			if sec.TitleStyle != nil {
				styleID, err := createStyle(f, sec.TitleStyle)
				if err != nil {
					return fmt.Errorf("section %q title style: %w", sec.ID, err)
				}
				endCell := cell
				// Merge title across columns if there are multiple columns
				if len(sec.Columns) > 1 {
					endCell, _ = excelize.CoordinatesToCellName(len(sec.Columns), currentRow)
					f.MergeCell(sheet, cell, endCell)
				}
				f.SetCellStyle(sheet, cell, endCell, styleID)
			}
			currentRow++
		}

		// Render Header
		if sec.ShowHeader {
			headerStyle := 0
			if sec.HeaderStyle != nil {
				id, err := createStyle(f, sec.HeaderStyle)
				if err != nil {
					return fmt.Errorf("section %q header style: %w", sec.ID, err)
				}
				headerStyle = id
			}
			for i, col := range sec.Columns {
				cell, _ := excelize.CoordinatesToCellName(i+1, currentRow)
				f.SetCellValue(sheet, cell, col.Header)
				if headerStyle != 0 {
					f.SetCellStyle(sheet, cell, cell, headerStyle)
				}
			}
			currentRow++
		}

		for i, col := range sec.Columns {
			if col.Width > 0 {
				colName, _ := excelize.ColumnNumberToName(i + 1)
				f.SetColWidth(sheet, colName, colName, col.Width)
			}
		}

		// Render Data
		dataVal := reflect.ValueOf(sec.Data)
		if dataVal.Kind() == reflect.Slice {
			for i := 0; i < dataVal.Len(); i++ {
				item := dataVal.Index(i)
				for j, col := range sec.Columns {
					val := extractValue(item, col.FieldName)
					if fn, ok := e.formatters[col.Formatter]; ok && col.Formatter != "" {
						val = fn(val)
					}
					cell, _ := excelize.CoordinatesToCellName(j+1, currentRow)
					if err := f.SetCellValue(sheet, cell, val); err != nil {
						return fmt.Errorf("section %q row %d: %w", sec.ID, i+1, err)
					}
				}
				currentRow++
			}
		}

		// Add spacing between sections
		currentRow++
	}

	return nil
}

// extractValue reads a field or map key from item. Pointers are followed;
// a nil pointer or a missing field yields "".
func extractValue(item reflect.Value, fieldName string) interface{} {
	for item.Kind() == reflect.Ptr || item.Kind() == reflect.Interface {
		if item.IsNil() {
			return ""
		}
		item = item.Elem()
	}

	var v reflect.Value
	switch item.Kind() {
	case reflect.Struct:
		v = item.FieldByName(fieldName)
	case reflect.Map:
		if item.Type().Key().Kind() == reflect.String {
			v = item.MapIndex(reflect.ValueOf(fieldName).Convert(item.Type().Key()))
		}
	}
	if !v.IsValid() || !v.CanInterface() {
		return ""
	}

	for v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return ""
		}
		v = v.Elem()
	}
	return v.Interface()
}

func createStyle(f *excelize.File, tmpl *StyleTemplate) (int, error) {
	style := &excelize.Style{}
	if tmpl.Font != nil {
		style.Font = &excelize.Font{
			Bold:  tmpl.Font.Bold,
			Color: strings.TrimPrefix(tmpl.Font.Color, "#"),
		}
	}
	if tmpl.Fill != nil {
		style.Fill = excelize.Fill{
			Type:    "pattern",
			Color:   []string{strings.TrimPrefix(tmpl.Fill.Color, "#")},
			Pattern: 1,
		}
	}
	return f.NewStyle(style)
}

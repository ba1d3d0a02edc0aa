package http

import "retirement-calc/domain"

// SwaggerDoc is the subset of Swagger 2.0 the discovery endpoint serves.
type SwaggerDoc struct {
	Swagger     string              `json:"swagger" yaml:"swagger"`
	Info        SwaggerInfo         `json:"info" yaml:"info"`
	Host        string              `json:"host" yaml:"host"`
	BasePath    string              `json:"basePath" yaml:"basePath"`
	Tags        []string            `json:"tags" yaml:"tags"`
	Schemes     []string            `json:"schemes" yaml:"schemes"`
	Paths       map[string]PathItem `json:"paths" yaml:"paths"`
	Definitions map[string]Schema   `json:"definitions" yaml:"definitions"`
}

type SwaggerInfo struct {
	Description string `json:"description" yaml:"description"`
	Version     string `json:"version" yaml:"version"`
	Title       string `json:"title" yaml:"title"`
}

type PathItem struct {
	Get  *Operation `json:"get,omitempty" yaml:"get,omitempty"`
	Post *Operation `json:"post,omitempty" yaml:"post,omitempty"`
}

type Operation struct {
	Tags        []string            `json:"tags,omitempty" yaml:"tags,omitempty"`
	Summary     string              `json:"summary" yaml:"summary"`
	Description string              `json:"description,omitempty" yaml:"description,omitempty"`
	Consumes    []string            `json:"consumes,omitempty" yaml:"consumes,omitempty"`
	Produces    []string            `json:"produces" yaml:"produces"`
	Parameters  []Parameter         `json:"parameters,omitempty" yaml:"parameters,omitempty"`
	Responses   map[string]Response `json:"responses" yaml:"responses"`
}

type Parameter struct {
	In          string `json:"in" yaml:"in"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Required    bool   `json:"required" yaml:"required"`
	Schema      Schema `json:"schema" yaml:"schema"`
}

type Response struct {
	Description string `json:"description" yaml:"description"`
	Schema      Schema `json:"schema" yaml:"schema"`
}

type Schema struct {
	Ref         string            `json:"$ref,omitempty" yaml:"$ref,omitempty"`
	Type        string            `json:"type,omitempty" yaml:"type,omitempty"`
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Properties  map[string]Schema `json:"properties,omitempty" yaml:"properties,omitempty"`
}

func ref(name string) Schema {
	return Schema{Ref: "#/definitions/" + name}
}

func number(desc string) Schema {
	return Schema{Type: "number", Description: desc}
}

// NewSwaggerDoc describes the calculator API served at host and basePath.
func NewSwaggerDoc(host, basePath string) SwaggerDoc {
	return SwaggerDoc{
		Swagger: "2.0",
		Info: SwaggerInfo{
			Description: "This is a sample retirement calculator using tax-deferred savings only.",
			Version:     "1.0.0",
			Title:       "Retirement Calc",
		},
		Host:     host,
		BasePath: basePath,
		Tags:     []string{},
		Schemes:  []string{"http"},
		Paths: map[string]PathItem{
			"/": {
				Get: &Operation{
					Tags:        []string{},
					Summary:     "Get this swagger doc",
					Description: "Returns the swagger doc",
					Produces:    []string{"application/json"},
					Responses: map[string]Response{
						"200": {Description: "successful operation", Schema: Schema{Type: "object"}},
					},
				},
			},
			"/calc": {
				Post: &Operation{
					Summary:  "Calculates total amount needed to retire and annual and monthly savings required to get to that goal.",
					Consumes: []string{"application/json"},
					Produces: []string{"application/json"},
					Parameters: []Parameter{{
						In:          "body",
						Name:        "body",
						Description: "Calc params object containing values to use",
						Required:    true,
						Schema:      ref("calcObject"),
					}},
					Responses: map[string]Response{
						"200": {Description: "Calculator result", Schema: ref("calcResult")},
						"400": {Description: "Bad request", Schema: ref("calcError")},
					},
				},
			},
		},
		Definitions: map[string]Schema{
			"calcObject": {
				Type: "object",
				Properties: map[string]Schema{
					domain.FieldMonthlyCosts:              number("The anticipated monthly costs required in retirement in dollars."),
					domain.FieldYearsUntilRetirement:      number("How many years until you plan to retire."),
					domain.FieldYearsInRetirement:         number("How many years you plan to be IN retirement."),
					domain.FieldInflation:                 number("The average annual inflation up through retirement. Provide a percentage, not a decimal."),
					domain.FieldCurrentTaxDeferredCapital: number("The amount of tax-deferred savings you currently have."),
					domain.FieldPreRateOfReturn:           number("Anticipated annual return on savings up until retirement. Provide a percentage, not a decimal."),
					domain.FieldPostRateOfReturn:          number("Anticipated annual return on savings through retirement. Provide a percentage, not a decimal."),
					domain.FieldTaxRate:                   number("Anticipated tax rate in retirement. Provide a percentage, not a decimal."),
					domain.FieldMonthlyIncome:             number("Expected monthly income during retirement in dollars e.g. social security, etc."),
				},
			},
			"calcResult": {
				Type: "object",
				Properties: map[string]Schema{
					"atRetirementCapitalRequired": {Type: "string", Description: "The total needed the day you retire."},
					"annualSavingsRequired":       {Type: "string", Description: "The annual savings needed to get you to that goal provided assumptions such as rate of return and inflation hold true."},
					"monthlySavingsRequired":      {Type: "string", Description: "Annual savings divided by 12"},
				},
			},
			"calcError": {
				Type: "object",
				Properties: map[string]Schema{
					"error":    {Type: "string", Description: "Error message"},
					"required": {Type: "string", Description: "A list of properties that are either missing or invalid."},
				},
			},
		},
	}
}

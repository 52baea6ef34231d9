// Package xmlout builds and serializes the DoseObjectives template document.
//
// Element and attribute names are dictated by the importing treatment
// planning system, not chosen here.
package xmlout

import "encoding/xml"

// xsiNamespace is the schema-instance namespace the importer expects on the
// root element.
const xsiNamespace = "http://www.w3.org/2001/XMLSchema-instance"

// Document is the DoseObjectives root element.
type Document struct {
	XMLName xml.Name       `xml:"DoseObjectives"`
	Version string         `xml:"Version,attr"`
	XSI     string         `xml:"xmlns:xsi,attr"`
	Preview Preview        `xml:"Preview"`
	Groups  []MeasureGroup `xml:"MeasureGroup"`
}

// Preview carries the template metadata shown by the importer before import.
type Preview struct {
	Version         string `xml:"Version,attr"`
	ID              string `xml:"ID,attr"`
	Type            string `xml:"Type,attr"`
	ApprovalStatus  string `xml:"ApprovalStatus,attr"`
	Description     string `xml:"Description,attr"`
	AssignedUsers   string `xml:"AssignedUsers,attr"`
	LastModified    string `xml:"LastModified,attr"`
	ApprovalHistory string `xml:"ApprovalHistory,attr"`
}

// MeasureGroup is one importable template of goals, keyed by TemplateID.
type MeasureGroup struct {
	ID    string        `xml:"ID,attr"`
	Items []MeasureItem `xml:"MeasureItem"`
}

// MeasureItem is one per-alias constraint entry.
type MeasureItem struct {
	ID        string    `xml:"ID,attr"`
	Structure Structure `xml:"Structure"`
	Metric    Metric    `xml:"Metric"`
	Variation string    `xml:"Variation,omitempty"`
	Priority  int       `xml:"Priority"`
}

// Structure references the constrained structure by canonical id.
type Structure struct {
	ID   string         `xml:"ID,attr"`
	Code *StructureCode `xml:"StructureCode,omitempty"`
}

// StructureCode is the optional coded structure reference.
type StructureCode struct {
	Code              string `xml:"Code,attr"`
	CodeScheme        string `xml:"CodeScheme,attr"`
	CodeSchemeVersion string `xml:"CodeSchemeVersion,attr"`
}

// Metric is the DVH metric of an entry. Parameter is present only for
// parametrized families and carries the formatted evaluation point.
type Metric struct {
	Name      string `xml:"Name,attr"`
	Parameter string `xml:"Parameter,attr,omitempty"`
}

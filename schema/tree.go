// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schema

import (
	"github.com/google/jsonschema-go/jsonschema"

	"github.com/bitmark-inc/audittracker/transactionrecord"
)

// bounds of asset fields
const (
	minCurrencyLength = 2
	maxCurrencyLength = 5
	minDateLength     = 24
	maxDateLength     = 27
	minInvoiceLength  = 4
	maxInvoiceLength  = 20
	maxCustomerLength = 255
	hashLength        = 64
	minIdCount        = 1
	maxIdCount        = 255
	minIdLength       = 1
	maxIdLength       = 255

	hexHashPattern      = "^[0-9a-fA-F]{64}$"
	hexPublicKeyPattern = "^[0-9a-f]{64}$"
	hexSignaturePattern = "^[0-9a-f]{128}$"
)

func intPtr(i int) *int                   { return &i }
func floatPtr(f float64) *float64         { return &f }
func constant(v interface{}) *interface{} { return &v }

// every property not listed is refused
func closed() *jsonschema.Schema {
	return &jsonschema.Schema{Not: &jsonschema.Schema{}}
}

func stringField(minLength int, maxLength int) *jsonschema.Schema {
	s := &jsonschema.Schema{
		Type:      "string",
		MaxLength: intPtr(maxLength),
	}
	if minLength > 0 {
		s.MinLength = intPtr(minLength)
	}
	return s
}

func dateField() *jsonschema.Schema {
	s := stringField(minDateLength, maxDateLength)
	s.Format = "date-time"
	return s
}

func amountField(minimum float64) *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:    "integer",
		Minimum: floatPtr(minimum),
	}
}

// the envelope tree shared by all kinds
func transactionTree(kind transactionrecord.Kind, asset *jsonschema.Schema) *jsonschema.Schema {
	return &jsonschema.Schema{
		Title: kind.Key(),
		Type:  "object",
		Required: []string{
			"version",
			"network",
			"typeGroup",
			"type",
			"nonce",
			"senderPublicKey",
			"fee",
			"amount",
			"asset",
		},
		Properties: map[string]*jsonschema.Schema{
			"version":   {Type: "integer", Const: constant(float64(transactionrecord.CurrentVersion))},
			"network":   {Type: "integer", Minimum: floatPtr(1), Maximum: floatPtr(255)},
			"typeGroup": {Type: "integer", Const: constant(float64(transactionrecord.TypeGroup))},
			"type":      {Type: "integer", Const: constant(float64(kind))},
			"nonce":     amountField(1),
			"senderPublicKey": {
				Type:    "string",
				Pattern: hexPublicKeyPattern,
			},
			"fee": amountField(0),
			"amount": {
				Type:    "integer",
				Minimum: floatPtr(0),
				Maximum: floatPtr(0),
			},
			"signature": {
				Type:    "string",
				Pattern: hexSignaturePattern,
			},
			"asset": asset,
		},
		AdditionalProperties: closed(),
	}
}

func invoiceAddedTree() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:     "object",
		Required: []string{"amount", "currency", "date", "invoice", "customer"},
		Properties: map[string]*jsonschema.Schema{
			"amount":   amountField(1),
			"currency": stringField(minCurrencyLength, maxCurrencyLength),
			"date":     dateField(),
			"invoice":  stringField(minInvoiceLength, maxInvoiceLength),
			"customer": stringField(0, maxCustomerLength),
		},
		AdditionalProperties: closed(),
	}
}

// paid and canceled share a tree
func invoiceBatchTree() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:     "object",
		Required: []string{"hash", "ids"},
		Properties: map[string]*jsonschema.Schema{
			"hash": {
				Type:      "string",
				MinLength: intPtr(hashLength),
				MaxLength: intPtr(hashLength),
				Pattern:   hexHashPattern,
			},
			"ids": {
				Type:        "array",
				MinItems:    intPtr(minIdCount),
				MaxItems:    intPtr(maxIdCount),
				UniqueItems: true,
				Items:       stringField(minIdLength, maxIdLength),
			},
		},
		AdditionalProperties: closed(),
	}
}

// currency is optional here and checked when applied
func invoiceSplitTree() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:     "object",
		Required: []string{"amount", "date", "invoice", "parent_invoice"},
		Properties: map[string]*jsonschema.Schema{
			"amount":         amountField(1),
			"currency":       stringField(minCurrencyLength, maxCurrencyLength),
			"date":           dateField(),
			"invoice":        stringField(minInvoiceLength, maxInvoiceLength),
			"parent_invoice": stringField(minInvoiceLength, maxInvoiceLength),
		},
		AdditionalProperties: closed(),
	}
}

// Tree - the complete constraint tree for a kind
func Tree(kind transactionrecord.Kind) (*jsonschema.Schema, bool) {
	switch kind {
	case transactionrecord.InvoiceAddedKind:
		return transactionTree(kind, invoiceAddedTree()), true
	case transactionrecord.InvoicePaidKind, transactionrecord.InvoiceCanceledKind:
		return transactionTree(kind, invoiceBatchTree()), true
	case transactionrecord.InvoiceSplitKind:
		return transactionTree(kind, invoiceSplitTree()), true
	default:
		return nil, false
	}
}

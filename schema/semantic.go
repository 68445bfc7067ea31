// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package schema

import (
	"github.com/bitmark-inc/audittracker/fault"
	"github.com/bitmark-inc/audittracker/transactionrecord"
)

// CheckAssetFields - apply time check that required asset fields are
// present, for records that never passed through Validate
func CheckAssetFields(asset transactionrecord.Asset) error {
	switch a := asset.(type) {

	case *transactionrecord.InvoiceAdded:
		if nil == a || 0 == a.Amount || "" == a.Currency || "" == a.Date || "" == a.Invoice || "" == a.Customer {
			return fault.ErrInvoiceAddedAsset
		}

	case *transactionrecord.InvoicePaid:
		if nil == a || "" == a.Hash || 0 == len(a.Ids) {
			return fault.ErrInvoicePaidAsset
		}

	case *transactionrecord.InvoiceCanceled:
		if nil == a || "" == a.Hash || 0 == len(a.Ids) {
			return fault.ErrInvoiceCanceledAsset
		}

	case *transactionrecord.InvoiceSplit:
		if nil == a || 0 == a.Amount || "" == a.Currency || "" == a.Date || "" == a.Invoice || "" == a.ParentInvoice {
			return fault.ErrInvoiceSplitAsset
		}

	default:
		return fault.ErrMissingAsset
	}
	return nil
}

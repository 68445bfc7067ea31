// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type PoolError GenericError
type ProcessError GenericError
type RecordError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised       = ExistsError("already initialised")
	ErrAmountNotZero            = InvalidError("transaction amount must be zero")
	ErrCannotDecodeAccount      = RecordError("cannot decode account")
	ErrChecksumMismatch         = RecordError("checksum mismatch")
	ErrAttributeNotFound        = NotFoundError("attribute not found")
	ErrBatchInUse               = ProcessError("batch already in use")
	ErrBatchNotInUse            = ProcessError("no batch in use")
	ErrBlockIsEmpty             = InvalidError("block has no transactions")
	ErrCountTooLarge            = LengthError("count exceeds 255 items")
	ErrDuplicateRegistration    = ExistsError("transaction kind already registered")
	ErrFieldTooLong             = LengthError("field exceeds 255 bytes")
	ErrHandlerNotActivated      = InvalidError("transaction kind is not activated")
	ErrHashLength               = LengthError("hash must be 64 characters")
	ErrIndexNotRegistered       = NotFoundError("index is not registered")
	ErrInsufficientBalance      = InvalidError("insufficient balance for fee")
	ErrInvalidAttributePath     = InvalidError("invalid attribute path")
	ErrInvalidCount             = InvalidError("invalid count")
	ErrInvalidCursor            = InvalidError("invalid cursor")
	ErrInvalidChain             = InvalidError("invalid chain")
	ErrInvalidKeyType           = InvalidError("invalid key type")
	ErrInvalidKeyLength         = InvalidError("invalid key length")
	ErrInvalidLoggerChannel     = InvalidError("invalid logger channel")
	ErrInvalidNonce             = InvalidError("invalid nonce")
	ErrInvalidSignature         = InvalidError("invalid signature")
	ErrInvalidTypeGroup         = InvalidError("invalid type group")
	ErrInvoiceAddedAsset        = InvalidError("failed to apply transaction, because wallet is not a invoiceAdded")
	ErrInvoiceAlreadyExists     = ExistsError("failed to apply transaction, because invoice is already present")
	ErrInvoiceCanceledAsset     = InvalidError("failed to apply transaction, because wallet is not a invoiceCanceled")
	ErrInvoiceNotPresent        = NotFoundError("failed to revert transaction, because invoice is not present")
	ErrInvoicePaidAsset         = InvalidError("failed to apply transaction, because wallet is not a invoicePaid")
	ErrInvoiceSplitAsset        = InvalidError("failed to apply transaction, because wallet is not a invoiceSplit")
	ErrMalformedInvoiceBag      = RecordError("malformed invoice attribute")
	ErrMissingAsset             = InvalidError("transaction has no asset")
	ErrNonceOverflow            = InvalidError("nonce overflow")
	ErrNotPublicKey             = InvalidError("not a public key")
	ErrNotTransactionPack       = RecordError("not a transaction pack")
	ErrNotRevertible            = InvalidError("transaction is not the latest in history")
	ErrPendingConflict          = PoolError("conflicting transaction already in the pool")
	ErrPoolDuplicate            = PoolError("transaction already in the pool")
	ErrPoolFeeTooLow            = PoolError("fee below minimum for transaction kind")
	ErrPoolRateLimited          = PoolError("pool submission rate exceeded")
	ErrPoolUnsupported          = PoolError("transaction kind not accepted by the pool")
	ErrPrivateKeyLength         = InvalidError("private key length is invalid")
	ErrSchemaValidation         = InvalidError("schema validation failed")
	ErrSenderMismatch           = InvalidError("sender does not match wallet")
	ErrTransactionAlreadyExists = ExistsError("transaction already in history")
	ErrTransactionNotFound      = NotFoundError("transaction not found")
	ErrTruncatedRecord          = RecordError("truncated record")
	ErrTrailingData             = RecordError("trailing data after record")
	ErrUnknownTransactionKind   = RecordError("unknown transaction kind")
	ErrUnsupportedVersion       = RecordError("unsupported transaction version")
	ErrUTF8                     = RecordError("string is not valid UTF-8")
	ErrWalletMissingPublicKey   = InvalidError("wallet has no public key")
	ErrWrongNetworkForPublicKey = InvalidError("wrong network for public key")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e PoolError) Error() string     { return string(e) }
func (e ProcessError) Error() string  { return string(e) }
func (e RecordError) Error() string   { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool   { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool  { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool   { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool { _, ok := e.(NotFoundError); return ok }
func IsErrPool(e error) bool     { _, ok := e.(PoolError); return ok }
func IsErrProcess(e error) bool  { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool   { _, ok := e.(RecordError); return ok }

// IsStructural - schema class errors abort construction and acceptance
func IsStructural(e error) bool {
	return IsErrInvalid(e) || IsErrLength(e)
}

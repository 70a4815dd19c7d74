package stash

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// transactionRecord is a specialized struct for decoding transactions.
// Pointer fields make missing required keys detectable.
type transactionRecord struct {
	ID          *int64           `json:"transaction_id"`
	Date        *string          `json:"date"`
	Time        *string          `json:"time"`
	Description *string          `json:"description"`
	Kind        *string          `json:"type"`
	Amount      *decimal.Decimal `json:"amount"`
}

func (r transactionRecord) transaction() (Transaction, error) {
	if r.ID == nil || r.Date == nil || r.Time == nil || r.Description == nil || r.Kind == nil || r.Amount == nil {
		return Transaction{}, fmt.Errorf("transaction record is missing required fields")
	}
	kind, err := ParseKind(*r.Kind)
	if err != nil {
		return Transaction{}, err
	}
	amount, err := NewAmount(*r.Amount)
	if err != nil {
		return Transaction{}, err
	}
	return Transaction{
		ID:          *r.ID,
		Date:        *r.Date,
		Time:        *r.Time,
		Description: *r.Description,
		Kind:        kind,
		Amount:      amount,
	}, nil
}

// accountRecord is a specialized struct for decoding accounts.
type accountRecord struct {
	ID           *string             `json:"id"`
	FullName     *string             `json:"full_name"`
	Email        *string             `json:"email"`
	DOB          *Date               `json:"dob"`
	Balance      *decimal.Decimal    `json:"balance"`
	Transactions []transactionRecord `json:"transactions"`
}

func (r accountRecord) account() (Account, error) {
	if r.ID == nil || r.FullName == nil || r.Email == nil || r.DOB == nil || r.Balance == nil {
		return Account{}, fmt.Errorf("account record is missing required fields")
	}
	txs := make([]Transaction, 0, len(r.Transactions))
	for i, tr := range r.Transactions {
		tx, err := tr.transaction()
		if err != nil {
			return Account{}, fmt.Errorf("transaction %d of account %q: %w", i, *r.ID, err)
		}
		txs = append(txs, tx)
	}
	return Account{
		ID:           *r.ID,
		FullName:     *r.FullName,
		Email:        *r.Email,
		DOB:          *r.DOB,
		Balance:      A(*r.Balance),
		Transactions: txs,
	}, nil
}

// DecodeDocument decodes a document from its persisted JSON form. Any
// content that is not an array of well-formed account records is reported
// as ErrCorruptStore.
func DecodeDocument(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	var records []accountRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("%w: content is not a document: %w", ErrCorruptStore, err)
	}

	accounts := make([]Account, 0, len(records))
	for i, rec := range records {
		account, err := rec.account()
		if err != nil {
			return nil, fmt.Errorf("%w: account %d: %w", ErrCorruptStore, i, err)
		}
		accounts = append(accounts, account)
	}

	doc, err := newDocument(accounts)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptStore, err)
	}
	return doc, nil
}

// EncodeDocument serializes the whole document to its canonical JSON form:
// an array of accounts in insertion order, indented with two spaces.
func EncodeDocument(w io.Writer, doc *Document) error {
	decimal.MarshalJSONWithoutQuotes = true

	accounts := doc.accounts
	if accounts == nil {
		accounts = []Account{}
	}
	data, err := json.MarshalIndent(accounts, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

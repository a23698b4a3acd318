package mapping

import (
	"github.com/woodybriggs/ledger/internal/core/domain"
	"github.com/woodybriggs/ledger/internal/models"
)

// ToModelRecord converts a domain Record to a model Record. The counterparty id
// lands in the supplier or customer column depending on the record kind.
func ToModelRecord(d domain.Record) models.Record {
	m := models.Record{
		RecordID:        d.RecordID,
		Kind:            string(d.Kind),
		RecordType:      string(d.RecordType),
		Status:          string(d.Status),
		Reference:       d.Reference,
		TransactionDate: d.TransactionDate,
		DueDate:         d.DueDate,
		Denomination:    d.Denomination,
		ExchangeRate:    d.ExchangeRate,
		GrossAmount:     d.GrossAmount,
		InvoiceID:       d.InvoiceID,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
	counterpartyID := d.CounterpartyID
	if d.Kind == domain.SaleRecord {
		m.CustomerID = &counterpartyID
	} else {
		m.SupplierID = &counterpartyID
	}
	if d.JournalEntry != nil {
		journalEntryID := d.JournalEntry.JournalEntryID
		m.JournalEntryID = &journalEntryID
	}
	return m
}

// ToDomainRecord converts a model Record to a domain Record without relations.
func ToDomainRecord(m models.Record) domain.Record {
	d := domain.Record{
		RecordID:        m.RecordID,
		Kind:            domain.RecordKind(m.Kind),
		RecordType:      domain.RecordType(m.RecordType),
		Status:          domain.RecordStatus(m.Status),
		Reference:       m.Reference,
		TransactionDate: m.TransactionDate,
		DueDate:         m.DueDate,
		Denomination:    m.Denomination,
		ExchangeRate:    m.ExchangeRate,
		GrossAmount:     m.GrossAmount,
		InvoiceID:       m.InvoiceID,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
	switch {
	case m.SupplierID != nil:
		d.CounterpartyID = *m.SupplierID
	case m.CustomerID != nil:
		d.CounterpartyID = *m.CustomerID
	}
	return d
}

// ToModelLineItem converts a domain LineItem to a model LineItem at the given position.
func ToModelLineItem(d domain.LineItem, position int) models.LineItem {
	return models.LineItem{
		LineItemID:       d.LineItemID,
		RecordID:         d.RecordID,
		Position:         position,
		Description:      d.Description,
		NominalAccountID: d.NominalAccountID,
		NetAmount:        d.NetAmount,
		VatAmount:        d.VatAmount,
	}
}

// ToDomainLineItem converts a model LineItem to a domain LineItem
func ToDomainLineItem(m models.LineItem) domain.LineItem {
	return domain.LineItem{
		LineItemID:       m.LineItemID,
		RecordID:         m.RecordID,
		Description:      m.Description,
		NominalAccountID: m.NominalAccountID,
		NetAmount:        m.NetAmount,
		VatAmount:        m.VatAmount,
	}
}

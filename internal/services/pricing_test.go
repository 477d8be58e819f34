package services

import (
	"testing"

	"github.com/farellandr/ticketservice/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestPriceList_Validate(t *testing.T) {
	tests := []struct {
		name    string
		prices  PriceList
		wantErr bool
		errMsg  string
	}{
		{name: "defaults", prices: DefaultPriceList()},
		{name: "paid infants", prices: PriceList{Adult: 25, Child: 15, Infant: 5}},
		{name: "negative infant", prices: PriceList{Adult: 25, Child: 15, Infant: -1}, wantErr: true, errMsg: "infant price cannot be negative"},
		{name: "child not above infant", prices: PriceList{Adult: 25, Child: 5, Infant: 5}, wantErr: true, errMsg: "child price must be greater than infant price"},
		{name: "adult not above child", prices: PriceList{Adult: 15, Child: 15, Infant: 0}, wantErr: true, errMsg: "adult price must be greater than child price"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.prices.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("PriceList.Validate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && err.Error() != tt.errMsg {
				t.Errorf("PriceList.Validate() error = %v, want %v", err.Error(), tt.errMsg)
			}
		})
	}
}

func TestPriceList_Total(t *testing.T) {
	prices := DefaultPriceList()

	assert.Equal(t, 0, prices.Total(TicketCounts{}))
	assert.Equal(t, 95, prices.Total(TicketCounts{Adult: 2, Child: 3, Infant: 2, Total: 7}))
	assert.Equal(t, 625, prices.Total(TicketCounts{Adult: 25, Total: 25}))
	assert.Equal(t, 12*25+13*15, prices.Total(TicketCounts{Adult: 12, Child: 13, Total: 25}))
}

func TestPriceList_PriceOf(t *testing.T) {
	prices := PriceList{Adult: 25, Child: 15, Infant: 3}

	assert.Equal(t, 25, prices.PriceOf(models.Adult))
	assert.Equal(t, 15, prices.PriceOf(models.Child))
	assert.Equal(t, 3, prices.PriceOf(models.Infant))
	assert.Equal(t, 0, prices.PriceOf("SENIOR"))
}

func TestTicketCounts_Seats(t *testing.T) {
	assert.Equal(t, 5, TicketCounts{Adult: 2, Child: 3, Infant: 2, Total: 7}.Seats())
	assert.Equal(t, 3, TicketCounts{Adult: 3, Infant: 3, Total: 6}.Seats())
	assert.Equal(t, 0, TicketCounts{}.Seats())
}

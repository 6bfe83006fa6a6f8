package domain

type FoodLine struct {
	Item      string
	Quantity  int
	LineTotal int64
}

type BillBreakdown struct {
	RoomCharge int64
	FoodLines  []FoodLine
	FoodTotal  int64
	GrandTotal int64
}

// ComputeBill produces the itemized charges for one booking. It never fails
// and never mutates the booking. All amounts are whole currency units, so the
// sums stay exact no matter how many food orders accumulate.
func ComputeBill(b *Booking) BillBreakdown {
	bill := BillBreakdown{
		RoomCharge: b.RoomCharge(),
	}

	for _, food := range b.FoodOrders {
		line := FoodLine{
			Item:      food.Item,
			Quantity:  food.Quantity,
			LineTotal: food.LineTotal(),
		}
		bill.FoodLines = append(bill.FoodLines, line)
		bill.FoodTotal += line.LineTotal
	}

	bill.GrandTotal = bill.RoomCharge + bill.FoodTotal

	return bill
}

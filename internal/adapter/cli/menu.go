package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/avelik/hotel_ledger/internal/core/services"
)

var (
	errInvalidChoice = errors.New("invalid menu choice")
	errInvalidNumber = errors.New("invalid number, please try again")
)

// Menu is the interactive console front end. It owns all prompting, parsing
// and rendering; every decision is delegated to the service.
type Menu struct {
	svc *services.HotelService
	in  *bufio.Scanner
	out io.Writer
}

func NewMenu(svc *services.HotelService, in io.Reader, out io.Writer) *Menu {
	return &Menu{
		svc: svc,
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Run drives the menu loop until the exit command or end of input. The exit
// command snapshots the ledger before returning; snapshot failures are
// surfaced as the loop's error.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.showMenu()

		choice, err := m.readLine()
		if err != nil {
			// End of input behaves like exit so a closed stdin still saves.
			return m.svc.Snapshot(ctx)
		}

		if choice == "5" {
			if err := m.svc.Snapshot(ctx); err != nil {
				return fmt.Errorf("failed to save data: %w", err)
			}
			fmt.Fprintln(m.out, "Data saved. Exiting system...")
			return nil
		}

		if err := m.dispatch(choice); err != nil {
			fmt.Fprintf(m.out, "Error: %s\n", err)
		}
	}
}

func (m *Menu) showMenu() {
	fmt.Fprintln(m.out, "\n===== HOTEL MANAGEMENT SYSTEM =====")
	fmt.Fprintln(m.out, "1. Book Room")
	fmt.Fprintln(m.out, "2. Order Food")
	fmt.Fprintln(m.out, "3. Generate Bill")
	fmt.Fprintln(m.out, "4. View All Bookings")
	fmt.Fprintln(m.out, "5. Exit")
	fmt.Fprint(m.out, "Enter choice: ")
}

func (m *Menu) dispatch(choice string) error {
	switch choice {
	case "1":
		return m.bookRoom()
	case "2":
		return m.orderFood()
	case "3":
		return m.generateBill()
	case "4":
		return m.viewBookings()
	default:
		return errInvalidChoice
	}
}

func (m *Menu) bookRoom() error {
	roomNumber, err := m.promptInt("Enter room number: ")
	if err != nil {
		return err
	}

	name, err := m.prompt("Customer Name: ")
	if err != nil {
		return err
	}

	contact, err := m.prompt("Contact Number: ")
	if err != nil {
		return err
	}

	_, err = m.svc.BookRoom(services.BookRoomRequest{
		RoomNumber:      roomNumber,
		CustomerName:    name,
		CustomerContact: contact,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(m.out, "Room booked successfully!")
	return nil
}

func (m *Menu) orderFood() error {
	roomNumber, err := m.promptInt("Enter room number: ")
	if err != nil {
		return err
	}

	item, err := m.prompt("Food item: ")
	if err != nil {
		return err
	}

	quantity, err := m.promptInt("Quantity: ")
	if err != nil {
		return err
	}

	if err := m.svc.AddFood(roomNumber, item, quantity); err != nil {
		return err
	}

	fmt.Fprintln(m.out, "Food added successfully!")
	return nil
}

func (m *Menu) generateBill() error {
	roomNumber, err := m.promptInt("Enter room number: ")
	if err != nil {
		return err
	}

	bill, err := m.svc.GetBillBreakdown(roomNumber)
	if err != nil {
		return err
	}

	fmt.Fprintln(m.out, "\n----- BILL DETAILS -----")
	fmt.Fprintf(m.out, "Customer: %s\n", bill.CustomerName)
	fmt.Fprintf(m.out, "Room Type: %s\n", bill.RoomType)
	fmt.Fprintf(m.out, "Room Charges: ₹%d\n", bill.RoomCharge)

	for _, line := range bill.FoodLines {
		fmt.Fprintf(m.out, "%s x %d = ₹%d\n", line.Item, line.Quantity, line.LineTotal)
	}

	fmt.Fprintf(m.out, "Food Charges: ₹%d\n", bill.FoodTotal)
	fmt.Fprintf(m.out, "Total Bill: ₹%d\n", bill.GrandTotal)
	return nil
}

func (m *Menu) viewBookings() error {
	bookings := m.svc.ListBookings()
	if len(bookings) == 0 {
		fmt.Fprintln(m.out, "No bookings found.")
		return nil
	}

	for _, b := range bookings {
		fmt.Fprintf(m.out, "Room %d | %s | %s\n", b.RoomNumber, b.Customer.Name, b.Category.Label())
	}

	return nil
}

func (m *Menu) prompt(label string) (string, error) {
	fmt.Fprint(m.out, label)
	return m.readLine()
}

func (m *Menu) promptInt(label string) (int, error) {
	raw, err := m.prompt(label)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errInvalidNumber
	}

	return n, nil
}

func (m *Menu) readLine() (string, error) {
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return strings.TrimSpace(m.in.Text()), nil
}

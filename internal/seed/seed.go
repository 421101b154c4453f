// Package seed generates plausible random task field values for manual
// testing. It is a demo helper with no lifecycle logic of its own.
package seed

import (
	"fmt"
	"math/rand/v2"

	"github.com/somfix/dashboard/internal/model"
	"github.com/somfix/dashboard/internal/store"
)

var firstNames = []string{
	"Ahmed", "Mohamed", "Ali", "Hassan", "Osman", "Abdi",
	"Fatuma", "Aisha", "Maryan", "Khadija", "Zahra", "Amina",
}

var lastNames = []string{
	"Omar", "Ali", "Ibrahim", "Yusuf", "Hassan",
	"Jama", "Hussein", "Mohamud", "Said", "Nur",
}

var applianceIssues = map[model.Appliance][]string{
	model.ApplianceFridge: {
		"Not cooling properly", "Making a loud noise",
		"Leaking water", "Freezer not working",
	},
	model.ApplianceCooker: {
		"One burner not working", "Oven not heating",
		"Ignition spark problem", "Gas smell detected",
	},
	model.ApplianceWashingMachine: {
		"Not spinning", "Drum not filling with water",
		"Leaking from the bottom", "Error code on display",
	},
	model.ApplianceAirConditioner: {
		"Not blowing cold air", "Water dripping indoors",
		"Making unusual sounds", "Remote not working",
	},
	model.ApplianceOther: {
		"Device not powering on", "Intermittent functionality",
		"Physical damage noted", "Needs general inspection",
	},
}

var descriptions = []string{
	"Customer requested urgent repair service.",
	"Routine diagnostic and repair visit.",
	"Follow-up on previous appliance issue.",
	"New installation and setup verification.",
	"Emergency call-out for non-functional appliance.",
}

func pick[T any](items []T) T {
	return items[rand.IntN(len(items))]
}

// CustomerName returns a random Somali full name.
func CustomerName() string {
	return pick(firstNames) + " " + pick(lastNames)
}

// PhoneNumber returns a random Somali mobile number in the form
// "+252 6x xxx xxx".
func PhoneNumber() string {
	carrier := pick([]string{"61", "62", "63", "65", "68"})
	n := 100000 + rand.IntN(900000)
	digits := fmt.Sprintf("%06d", n)
	return fmt.Sprintf("+252 %s %s %s", carrier, digits[:3], digits[3:])
}

// FailureDetails returns a plausible reported problem for the appliance.
func FailureDetails(appliance model.Appliance) string {
	issues, ok := applianceIssues[appliance]
	if !ok {
		issues = applianceIssues[model.ApplianceOther]
	}
	return pick(issues)
}

// Description returns a generic task description.
func Description() string {
	return pick(descriptions)
}

// Amount returns a quote between 50 and 300 USD in increments of 5.
func Amount() float64 {
	return float64((rand.IntN((300-50)/5+1) + 50/5) * 5)
}

// Appliance returns a random appliance category.
func Appliance() model.Appliance {
	return pick(model.Appliances())
}

// TaskInput returns a complete random task input, assigned to a random
// roster technician when the roster is non-empty.
func TaskInput(roster []model.Technician) store.TaskInput {
	appliance := Appliance()
	in := store.TaskInput{
		Description:    Description(),
		AmountUSD:      Amount(),
		CustomerName:   CustomerName(),
		CustomerPhone:  PhoneNumber(),
		Appliance:      appliance,
		FailureDetails: FailureDetails(appliance),
	}
	if len(roster) > 0 {
		tech := pick(roster)
		in.TechnicianID = &tech.ID
		in.TechnicianName = &tech.Name
	}
	return in
}

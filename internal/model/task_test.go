package model

import "testing"

func TestStatusIsTerminal(t *testing.T) {
	tests := []struct {
		status   Status
		terminal bool
	}{
		{StatusPending, false},
		{StatusAccepted, false},
		{StatusRejected, true},
		{StatusCompleted, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.IsTerminal(); got != tt.terminal {
				t.Errorf("IsTerminal(%q) = %v, want %v", tt.status, got, tt.terminal)
			}
		})
	}
}

func TestTaskIsAssignedTo(t *testing.T) {
	techID := "tech_a"
	assigned := Task{AssignedTechnicianID: &techID}
	unassigned := Task{}

	if !assigned.IsAssignedTo("tech_a") {
		t.Error("assigned task should match its technician")
	}
	if assigned.IsAssignedTo("tech_b") {
		t.Error("assigned task should not match another technician")
	}
	if unassigned.IsAssignedTo("tech_a") {
		t.Error("unassigned task should match no one")
	}
}

func TestAppliancesOrder(t *testing.T) {
	want := []Appliance{
		ApplianceFridge,
		ApplianceCooker,
		ApplianceWashingMachine,
		ApplianceAirConditioner,
		ApplianceOther,
	}
	got := Appliances()
	if len(got) != len(want) {
		t.Fatalf("Appliances() returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Appliances()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSessionConstructors(t *testing.T) {
	m := ManagerSession()
	if m.Role != RoleManager || m.ID != RecipientManager {
		t.Errorf("ManagerSession() = %+v", m)
	}

	tech := Technician{ID: "tech_a", Name: "Asha Omar"}
	s := TechnicianSession(tech)
	if s.Role != RoleTechnician || s.ID != tech.ID || s.Name != tech.Name {
		t.Errorf("TechnicianSession(%+v) = %+v", tech, s)
	}
}

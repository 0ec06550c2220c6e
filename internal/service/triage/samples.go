package triage

import "github.com/ogadoctor/triage-api/internal/model"

// samples are the canned test-mode patients, one per priority.
var samples = map[model.Priority]model.CreateCaseRequest{
	model.PriorityUrgent: {
		Name:              "Aisha Musa",
		Age:               28,
		Phone:             "+234 803 XXX XXXX",
		Symptoms:          "Fever for 3 days, chills, body pain",
		Severity:          "Strong",
		Duration:          "3 days",
		PossibleDiagnosis: "Malaria-like symptoms",
		RecommendedDrugs:  "Coartem / Lone Star / Paracetamol",
		Priority:          model.PriorityUrgent,
	},
	model.PriorityModerate: {
		Name:              "Chukwudi Obi",
		Age:               45,
		Phone:             "+234 806 XXX XXXX",
		Symptoms:          "Persistent cough and chest congestion",
		Severity:          "Moderate",
		Duration:          "5 days",
		PossibleDiagnosis: "Respiratory infection",
		RecommendedDrugs:  "Amoxicillin / Cough syrup",
		Priority:          model.PriorityModerate,
	},
	model.PriorityLow: {
		Name:              "Ngozi Eze",
		Age:               34,
		Phone:             "+234 809 XXX XXXX",
		Symptoms:          "Mild headache and tiredness",
		Severity:          "Mild",
		Duration:          "1 day",
		PossibleDiagnosis: "Stress/fatigue",
		RecommendedDrugs:  "Paracetamol / Multivitamin",
		Priority:          model.PriorityLow,
	},
}

package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lisahub/agent-hub-be/internal/models"
)

func testAgent() *models.Agent {
	return &models.Agent{
		Name:      "Lisa",
		HotelName: "Hotel Playa Azul",
	}
}

func TestBuildSystemPromptInterpolatesNames(t *testing.T) {
	p := BuildSystemPrompt(testAgent(), 0, 0, false, models.AlgorithmHotel, RegionNeutral, RegisterProfessional)

	assert.Contains(t, p, "Eres Lisa")
	assert.Contains(t, p, "Hotel Playa Azul")
	assert.NotContains(t, p, "{agentName}")
	assert.NotContains(t, p, "{hotelName}")
}

func TestBuildSystemPromptSections(t *testing.T) {
	p := BuildSystemPrompt(testAgent(), 8, 3, true, models.AlgorithmRestaurant, RegionPaisa, RegisterRelaxed)

	assert.Contains(t, p, "## CONOCIMIENTO DISPONIBLE")
	assert.Contains(t, p, "## FORMA DE HABLAR")
	assert.Contains(t, p, "## TONO")
	assert.Contains(t, p, "## PRINCIPIOS DE COMPORTAMIENTO")
	assert.Contains(t, p, "8 preguntas frecuentes")
	assert.Contains(t, p, "3 productos")
	assert.Contains(t, p, "redes sociales")
	assert.Contains(t, p, "paisa")
}

func TestBuildSystemPromptEmptyKnowledge(t *testing.T) {
	p := BuildSystemPrompt(testAgent(), 0, 0, false, models.AlgorithmHotel, RegionNeutral, RegisterProfessional)

	assert.Contains(t, p, "Aún no tienes conocimiento específico cargado")
}

func TestBuildSystemPromptFallsBackOnUnknownInputs(t *testing.T) {
	p := BuildSystemPrompt(testAgent(), 0, 0, false, models.AlgorithmType("unknown"), Region("marciano"), Register("opera"))

	// Hotel template plus neutral/professional overlays
	assert.Contains(t, p, "conserje local")
	assert.Contains(t, p, "colombiano neutro")
	assert.Contains(t, p, "profesional pero cercano")
}

func TestPreviewUsesRegionalGreeting(t *testing.T) {
	p := Preview("Boutique Roma", models.AlgorithmRestaurant, RegionPaisa)

	assert.Contains(t, p, "Boutique Roma")
	assert.True(t, strings.Contains(p, "parce"))
}

func TestPreviewFallsBackToNeutralHotel(t *testing.T) {
	p := Preview("Hotel Sierra", models.AlgorithmType("unknown"), Region("unknown"))

	assert.Contains(t, p, "Hotel Sierra")
	assert.Contains(t, p, "reservación")
}

// Package seed provides the initial snapshot the store layer starts from
// when no real backend is attached. The store does not validate it.
package seed

import (
	"time"

	"github.com/lisahub/agent-hub-be/internal/models"
)

func ts(value string) time.Time {
	t, _ := time.Parse(time.RFC3339, value)
	return t
}

func intPtr(v int) *int { return &v }

// Agents returns the initial agent list
func Agents() []models.Agent {
	return []models.Agent{
		{
			ID:          "agent-001",
			UserID:      "user-001",
			Name:        "Playa Azul Assistant",
			HotelName:   "Hotel Playa Azul",
			Status:      models.AgentStatusActive,
			Personality: "Conserje amigable y conocedor que disfruta ayudar a los huéspedes a descubrir atracciones locales y asegurar una estadía cómoda.",
			Tone:        models.ToneFriendly,
			Language:    "es",

			WhatsAppConnected:   true,
			WhatsAppPhoneNumber: "+52 998 123 4567",
			WhatsAppProvider:    models.ProviderMeta,

			SocialLinks: &models.SocialLinks{
				Website:     "https://hotelplayaazul.com",
				Facebook:    "https://facebook.com/hotelplayaazul",
				Instagram:   "https://instagram.com/hotelplayaazul",
				TripAdvisor: "https://tripadvisor.com/Hotel-Playa-Azul",
				GoogleMaps:  "https://maps.google.com/?cid=123456789",
			},
			AlgorithmType:      models.AlgorithmHotel,
			CommunicationStyle: &models.CommunicationStyle{Region: "neutral", Register: "professional"},

			MessageCount: 1247,
			FaqCount:     8,
			ProductCount: 0,
			CreatedAt:    ts("2025-10-15T08:00:00Z"),
			UpdatedAt:    ts("2026-02-14T12:30:00Z"),
		},
		{
			ID:          "agent-002",
			UserID:      "user-001",
			Name:        "Sierra Nevada Concierge",
			HotelName:   "Hotel Sierra Nevada",
			Status:      models.AgentStatusActive,
			Personality: "Asistente profesional y atento especializado en servicios de resort de montaña y turismo de aventura.",
			Tone:        models.ToneFormal,
			Language:    "es",

			WhatsAppConnected:   true,
			WhatsAppPhoneNumber: "+52 614 987 6543",
			WhatsAppProvider:    models.ProviderWati,

			AlgorithmType:      models.AlgorithmHotel,
			CommunicationStyle: &models.CommunicationStyle{Region: "neutral", Register: "corporate"},

			MessageCount: 834,
			FaqCount:     6,
			ProductCount: 0,
			CreatedAt:    ts("2025-11-02T10:00:00Z"),
			UpdatedAt:    ts("2026-02-13T09:15:00Z"),
		},
		{
			ID:          "agent-003",
			UserID:      "user-001",
			Name:        "Roma Bot",
			HotelName:   "Boutique Roma",
			Status:      models.AgentStatusSetup,
			Personality: "Asistente moderno y relajado para un hotel boutique en la colonia Roma.",
			Tone:        models.ToneCasual,
			Language:    "es",

			AlgorithmType:      models.AlgorithmRestaurant,
			CommunicationStyle: &models.CommunicationStyle{Region: "paisa", Register: "relaxed"},

			MessageCount: 0,
			FaqCount:     0,
			ProductCount: 3,
			CreatedAt:    ts("2026-02-10T14:00:00Z"),
			UpdatedAt:    ts("2026-02-10T14:00:00Z"),
		},
	}
}

// FAQs returns the initial FAQ set (agent-001)
func FAQs() []models.FAQ {
	return []models.FAQ{
		{ID: "faq-001", AgentID: "agent-001", Question: "¿Cuáles son los horarios de check-in y check-out?", Answer: "El check-in es a las 3:00 PM y el check-out a las 12:00 PM. El check-in anticipado y el check-out tardío están disponibles bajo solicitud, sujetos a disponibilidad.", Category: "General", SortOrder: 1, IsActive: true},
		{ID: "faq-002", AgentID: "agent-001", Question: "¿Hay WiFi disponible en el hotel?", Answer: "¡Sí! WiFi de alta velocidad gratuito está disponible en todo el hotel, incluyendo habitaciones, lobby, área de alberca y restaurante.", Category: "Amenidades", SortOrder: 2, IsActive: true},
		{ID: "faq-003", AgentID: "agent-001", Question: "¿Cuál es el horario de la alberca?", Answer: "Nuestra alberca está abierta todos los días de 7:00 AM a 10:00 PM. También contamos con un bar acuático abierto de 11:00 AM a 8:00 PM.", Category: "Amenidades", SortOrder: 3, IsActive: true},
		{ID: "faq-004", AgentID: "agent-001", Question: "¿El hotel tiene restaurante?", Answer: "Sí, contamos con dos restaurantes. 'Mar Abierto' sirve desayuno, comida y cena. 'La Terraza' es nuestro bar y parrilla en la azotea, abierto de 5 PM a medianoche.", Category: "Gastronomía", SortOrder: 4, IsActive: true},
		{ID: "faq-005", AgentID: "agent-001", Question: "¿Tienen estacionamiento?", Answer: "Sí, ofrecemos estacionamiento gratuito para todos los huéspedes. El servicio de valet también está disponible por $150 MXN por noche.", Category: "Servicios", SortOrder: 5, IsActive: true},
		{ID: "faq-006", AgentID: "agent-001", Question: "¿Aceptan mascotas?", Answer: "Recibimos mascotas pequeñas (menores de 10 kg) en habitaciones seleccionadas pet-friendly con un cargo adicional de $300 MXN por noche.", Category: "Políticas", SortOrder: 6, IsActive: true},
		{ID: "faq-007", AgentID: "agent-001", Question: "¿Ofrecen servicio de traslado al aeropuerto?", Answer: "Sí, ofrecemos servicio de traslado al aeropuerto por $450 MXN por viaje. Reserva con al menos 24 horas de anticipación.", Category: "Servicios", SortOrder: 7, IsActive: true},
		{ID: "faq-008", AgentID: "agent-001", Question: "¿Cuál es la política de cancelación?", Answer: "La cancelación gratuita está disponible hasta 48 horas antes del check-in. Las cancelaciones dentro de las 48 horas se cobran una noche de estadía.", Category: "Políticas", SortOrder: 8, IsActive: true},
	}
}

// Contacts returns the initial hotel contact list (agent-001)
func Contacts() []models.HotelContact {
	return []models.HotelContact{
		{ID: "contact-001", AgentID: "agent-001", Name: "Recepción", Phone: "+52 998 123 4567", Category: "Hotel", Description: "Atención 24 horas", IsActive: true},
		{ID: "contact-002", AgentID: "agent-001", Name: "Restaurante Mar Abierto", Phone: "+52 998 123 4568", Category: "Gastronomía", Description: "Reservaciones y servicio a habitación", IsActive: true},
		{ID: "contact-003", AgentID: "agent-001", Name: "Spa & Bienestar", Phone: "+52 998 123 4569", Category: "Amenidades", Description: "Citas y tratamientos", IsActive: true},
		{ID: "contact-004", AgentID: "agent-001", Name: "Transporte aeropuerto", Phone: "+52 998 555 1234", Category: "Transporte", Description: "Traslados y tours", IsActive: true},
		{ID: "contact-005", AgentID: "agent-001", Name: "Emergencias", Phone: "911", Category: "Emergencias", Description: "Policía, bomberos, ambulancia", IsActive: true},
	}
}

// Products returns the initial catalog (agent-003)
func Products() []models.Product {
	return []models.Product{
		{
			ID: "prod-001", AgentID: "agent-003", Name: "Tacos al Pastor",
			Description: "Tres tacos de cerdo adobado con piña, cilantro y cebolla. Servidos con salsa verde y limón.",
			Price:       85, Category: "Platillos principales", SKU: "TAC-001", Stock: intPtr(50),
			Variants: []models.ProductVariant{
				{Name: "Tortilla", Options: []string{"Maíz", "Harina"}},
				{Name: "Picor", Options: []string{"Sin chile", "Medio", "Extra picante"}},
			},
			IsActive: true, SortOrder: 1,
		},
		{
			ID: "prod-002", AgentID: "agent-003", Name: "Mezcal Artesanal",
			Description: "Mezcal joven de Oaxaca, 100% agave espadín. Servido con naranja y sal de gusano.",
			Price:       120, Category: "Bebidas", SKU: "BEB-001", Stock: intPtr(30),
			Variants: []models.ProductVariant{{Name: "Medida", Options: []string{"Caballito", "Doble"}}},
			IsActive: true, SortOrder: 2,
		},
		{
			ID: "prod-003", AgentID: "agent-003", Name: "Churros con Chocolate",
			Description: "Seis churros recién hechos con azúcar y canela, acompañados de chocolate caliente.",
			Price:       65, Category: "Postres", SKU: "POS-001", Stock: intPtr(25),
			Variants: []models.ProductVariant{}, IsActive: false, SortOrder: 3,
		},
	}
}

// Conversations returns the initial conversation list
func Conversations() []models.Conversation {
	return []models.Conversation{
		{ID: "conv-001", AgentID: "agent-001", ContactPhone: "+52 55 1234 5678", ContactName: "Carlos Martinez", MessageCount: 9, LastMessageAt: ts("2026-02-15T09:45:00Z"), LastMessage: "Carlos, te confirmo que tu habitación pet-friendly está lista para el 20 de febrero.", Status: models.StatusHumanHandling, Tags: []string{"reserva", "vip"}},
		{ID: "conv-002", AgentID: "agent-001", ContactPhone: "+1 310 555 0199", ContactName: "Sarah Johnson", MessageCount: 4, LastMessageAt: ts("2026-02-14T18:45:00Z"), LastMessage: "I have noted your arrival for February 20 at 2:00 PM...", Status: models.StatusBotHandling, Tags: []string{"reserva"}},
		{ID: "conv-003", AgentID: "agent-001", ContactPhone: "+52 33 9876 5432", ContactName: "Ana Lopez", MessageCount: 3, LastMessageAt: ts("2026-02-14T14:20:00Z"), LastMessage: "Gracias!", Status: models.StatusResolved, Tags: []string{"info"}},
		{ID: "conv-004", AgentID: "agent-002", ContactPhone: "+52 81 5555 1234", ContactName: "Roberto Diaz", MessageCount: 5, LastMessageAt: ts("2026-02-15T07:10:00Z"), LastMessage: "La Ruta del Bosque por favor, para 2 personas.", Status: models.StatusBotHandling, Tags: []string{"reserva", "urgente"}},
		{ID: "conv-005", AgentID: "agent-002", ContactPhone: "+44 7700 900123", ContactName: "James Wilson", MessageCount: 2, LastMessageAt: ts("2026-02-13T22:05:00Z"), LastMessage: "Our cancellation policy allows free cancellation up to 48 hours before...", Status: models.StatusResolved, Tags: []string{"info"}},
	}
}

// Messages returns the initial message history
func Messages() []models.Message {
	return []models.Message{
		{ID: "msg-001", ConversationID: "conv-001", AgentID: "agent-001", Role: "user", Content: "Hola, quisiera saber el horario de check-in por favor.", CreatedAt: ts("2026-02-15T09:10:00Z")},
		{ID: "msg-002", ConversationID: "conv-001", AgentID: "agent-001", Role: "assistant", Content: "Hola Carlos! El check-in es a las 3:00 PM y el check-out a las 12:00 PM. Algo mas en lo que pueda ayudarte?", MatchedFaqID: "faq-001", Confidence: 0.95, CreatedAt: ts("2026-02-15T09:10:05Z")},
		{ID: "msg-003", ConversationID: "conv-001", AgentID: "agent-001", Role: "user", Content: "Tienen estacionamiento?", CreatedAt: ts("2026-02-15T09:25:00Z")},
		{ID: "msg-004", ConversationID: "conv-001", AgentID: "agent-001", Role: "assistant", Content: "Si, tenemos estacionamiento gratuito para todos los huespedes. Tambien ofrecemos servicio de valet por $150 MXN por noche.", MatchedFaqID: "faq-005", Confidence: 0.92, CreatedAt: ts("2026-02-15T09:25:04Z")},
		{ID: "msg-005", ConversationID: "conv-001", AgentID: "agent-001", Role: "human", Content: "Carlos, te confirmo que tu habitación pet-friendly está lista para el 20 de febrero. Te asignamos la 305 con vista al mar.", CreatedAt: ts("2026-02-15T09:35:00Z")},
		{ID: "msg-006", ConversationID: "conv-002", AgentID: "agent-001", Role: "user", Content: "Hi! Do you have airport shuttle service?", CreatedAt: ts("2026-02-14T18:30:00Z")},
		{ID: "msg-007", ConversationID: "conv-002", AgentID: "agent-001", Role: "assistant", Content: "Hello Sarah! Yes, we offer airport shuttle service for $450 MXN per trip (one way). Would you like me to help you arrange a transfer?", MatchedFaqID: "faq-007", Confidence: 0.94, CreatedAt: ts("2026-02-14T18:30:04Z")},
		{ID: "msg-008", ConversationID: "conv-003", AgentID: "agent-001", Role: "user", Content: "Buenas tardes, tienen WiFi?", CreatedAt: ts("2026-02-14T14:15:00Z")},
		{ID: "msg-009", ConversationID: "conv-003", AgentID: "agent-001", Role: "assistant", Content: "Buenas tardes Ana! Si, contamos con WiFi gratuito de alta velocidad en todo el hotel.", MatchedFaqID: "faq-002", Confidence: 0.96, CreatedAt: ts("2026-02-14T14:15:03Z")},
		{ID: "msg-010", ConversationID: "conv-004", AgentID: "agent-002", Role: "user", Content: "Hola, que actividades ofrecen en el hotel?", CreatedAt: ts("2026-02-15T06:50:00Z")},
		{ID: "msg-011", ConversationID: "conv-004", AgentID: "agent-002", Role: "assistant", Content: "Buenos dias Roberto. Ofrecemos senderismo guiado, rappel, ciclismo de montana y paseos a caballo. Puedo ayudarle a reservar alguna actividad?", Confidence: 0.85, CreatedAt: ts("2026-02-15T06:50:05Z")},
		{ID: "msg-012", ConversationID: "conv-005", AgentID: "agent-002", Role: "user", Content: "Hello, what is your cancellation policy?", CreatedAt: ts("2026-02-13T22:00:00Z")},
		{ID: "msg-013", ConversationID: "conv-005", AgentID: "agent-002", Role: "assistant", Content: "Good evening, Mr. Wilson. Our cancellation policy allows free cancellation up to 48 hours before your scheduled check-in.", Confidence: 0.91, CreatedAt: ts("2026-02-13T22:00:05Z")},
	}
}

// ConversationTags returns the initial tag registry
func ConversationTags() []models.ConversationTag {
	return []models.ConversationTag{
		{ID: "tag-001", AgentID: "agent-001", Name: "reserva", Color: "#3b82f6"},
		{ID: "tag-002", AgentID: "agent-001", Name: "pedido", Color: "#f59e0b"},
		{ID: "tag-003", AgentID: "agent-001", Name: "queja", Color: "#ef4444"},
		{ID: "tag-004", AgentID: "agent-001", Name: "urgente", Color: "#dc2626"},
		{ID: "tag-005", AgentID: "agent-001", Name: "info", Color: "#6b7280"},
		{ID: "tag-006", AgentID: "agent-001", Name: "vip", Color: "#8b5cf6"},
		{ID: "tag-007", AgentID: "agent-002", Name: "reserva", Color: "#3b82f6"},
		{ID: "tag-008", AgentID: "agent-002", Name: "urgente", Color: "#dc2626"},
		{ID: "tag-009", AgentID: "agent-002", Name: "info", Color: "#6b7280"},
	}
}

// CRMClients returns the initial CRM client list
func CRMClients() []models.CRMClient {
	return []models.CRMClient{
		{ID: "client-001", AgentID: "agent-001", Name: "Carlos Martinez", Phone: "+52 55 1234 5678", Email: "carlos.martinez@email.com", FirstContactAt: "2026-01-10T14:00:00Z", LastContactAt: "2026-02-15T09:32:00Z", TotalConversations: 3, TotalMessages: 18, Tags: []string{"frecuente", "vip"}, Notes: "Huésped frecuente. Prefiere habitaciones con vista al mar. Viaja con mascota pequeña.", Status: "vip"},
		{ID: "client-002", AgentID: "agent-001", Name: "Sarah Johnson", Phone: "+1 310 555 0199", Email: "sarah.j@gmail.com", FirstContactAt: "2026-02-14T18:30:00Z", LastContactAt: "2026-02-14T18:45:00Z", TotalConversations: 1, TotalMessages: 4, Tags: []string{"nuevo"}, Notes: "Primera visita. Llega el 20 de febrero. Necesita traslado aeropuerto.", Status: "active"},
		{ID: "client-003", AgentID: "agent-001", Name: "Ana Lopez", Phone: "+52 33 9876 5432", FirstContactAt: "2026-02-14T14:15:00Z", LastContactAt: "2026-02-14T14:20:00Z", TotalConversations: 1, TotalMessages: 3, Tags: []string{"nuevo"}, Status: "active"},
		{ID: "client-004", AgentID: "agent-002", Name: "Roberto Diaz", Phone: "+52 81 5555 1234", Email: "roberto.diaz@empresa.mx", FirstContactAt: "2025-12-20T10:00:00Z", LastContactAt: "2026-02-15T07:10:00Z", TotalConversations: 5, TotalMessages: 22, Tags: []string{"frecuente", "vip"}, Notes: "Cliente corporativo. Reserva actividades de aventura regularmente para su equipo.", Status: "vip"},
		{ID: "client-005", AgentID: "agent-002", Name: "James Wilson", Phone: "+44 7700 900123", Email: "j.wilson@uk.co", FirstContactAt: "2026-02-13T22:00:00Z", LastContactAt: "2026-02-13T22:05:00Z", TotalConversations: 1, TotalMessages: 2, Tags: []string{"nuevo"}, Status: "inactive"},
	}
}

// Integrations returns the initial per-agent connector list
func Integrations() []models.Integration {
	return []models.Integration{
		{ID: "int-001", AgentID: "agent-001", Name: "wompi", Description: "Pagos en línea y recaudos", Category: "payments", Icon: "CreditCard", RequiredPlan: "pro", Enabled: true, Environment: models.EnvSandbox, Configured: true, Credentials: map[string]string{"publicKey": "pub_test_abc123", "privateKey": "prv_test_xyz789", "eventsKey": "evt_test_def456"}},
		{ID: "int-002", AgentID: "agent-001", Name: "bold", Description: "Pasarela de pagos Colombia", Category: "payments", Icon: "CreditCard", RequiredPlan: "pro"},
		{ID: "int-003", AgentID: "agent-001", Name: "invoicing", Description: "DIAN Colombia", Category: "operations", Icon: "FileText", RequiredPlan: "business"},
		{ID: "int-004", AgentID: "agent-001", Name: "logistics", Description: "Seguimiento de envíos", Category: "operations", Icon: "Package", RequiredPlan: "business"},
		{ID: "int-005", AgentID: "agent-001", Name: "google-sheets", Description: "Lectura de catálogos y productos", Category: "productivity", Icon: "Table2", RequiredPlan: "pro"},
		{ID: "int-006", AgentID: "agent-001", Name: "google-calendar", Description: "Agenda de reservas y citas", Category: "productivity", Icon: "Calendar", RequiredPlan: "pro"},
		{ID: "int-007", AgentID: "agent-001", Name: "gmail", Description: "Confirmaciones y seguimiento por email", Category: "productivity", Icon: "Mail", RequiredPlan: "pro"},
		{ID: "int-008", AgentID: "agent-001", Name: "woocommerce", Description: "Catálogo y pedidos WooCommerce", Category: "ecommerce", Icon: "Globe", RequiredPlan: "business"},
		{ID: "int-009", AgentID: "agent-001", Name: "shopify", Description: "Catálogo y pedidos Shopify", Category: "ecommerce", Icon: "ShoppingBag", RequiredPlan: "business"},
		{ID: "int-010", AgentID: "agent-002", Name: "wompi", Description: "Pagos en línea y recaudos", Category: "payments", Icon: "CreditCard", RequiredPlan: "pro"},
		{ID: "int-011", AgentID: "agent-002", Name: "bold", Description: "Pasarela de pagos Colombia", Category: "payments", Icon: "CreditCard", RequiredPlan: "pro", Enabled: true, Environment: models.EnvSandbox, Configured: true, Credentials: map[string]string{"apiKey": "bold_test_key_123", "secretKey": "bold_test_secret_456"}},
		{ID: "int-012", AgentID: "agent-002", Name: "google-sheets", Description: "Lectura de catálogos y productos", Category: "productivity", Icon: "Table2", RequiredPlan: "pro"},
		{ID: "int-013", AgentID: "agent-002", Name: "google-calendar", Description: "Agenda de reservas y citas", Category: "productivity", Icon: "Calendar", RequiredPlan: "pro"},
		{ID: "int-014", AgentID: "agent-002", Name: "gmail", Description: "Confirmaciones y seguimiento por email", Category: "productivity", Icon: "Mail", RequiredPlan: "pro"},
	}
}

// Stats returns the seeded dashboard statistics snapshot
func Stats() models.DashboardStats {
	return models.DashboardStats{
		TotalAgents:        3,
		ActiveAgents:       2,
		TotalMessages:      2081,
		MessagesThisWeek:   187,
		MessagesLastWeek:   153,
		TotalConversations: 124,
		AvgResponseTime:    "4.2s",
		SatisfactionRate:   94.5,
	}
}

// WeeklyMessages returns the seeded weekly message series
func WeeklyMessages() []models.WeeklyMessageData {
	return []models.WeeklyMessageData{
		{Day: "Mon", Messages: 32},
		{Day: "Tue", Messages: 28},
		{Day: "Wed", Messages: 35},
		{Day: "Thu", Messages: 22},
		{Day: "Fri", Messages: 41},
		{Day: "Sat", Messages: 18},
		{Day: "Sun", Messages: 11},
	}
}

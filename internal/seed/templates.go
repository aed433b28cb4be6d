package seed

import "github.com/lisahub/agent-hub-be/internal/models"

// FAQTemplates returns the predefined question set offered to agents that
// have no FAQs configured yet
func FAQTemplates() []models.FAQTemplate {
	return []models.FAQTemplate{
		{Question: "¿Cuáles son los horarios de check-in y check-out?", Answer: "El check-in es a las 3:00 PM y el check-out a las 12:00 PM. El check-in anticipado y check-out tardío pueden estar disponibles bajo solicitud.", Category: "General"},
		{Question: "¿Hay WiFi disponible?", Answer: "Sí, WiFi de alta velocidad gratuito está disponible en todas las habitaciones y áreas públicas.", Category: "Amenidades"},
		{Question: "¿Tienen alberca?", Answer: "Sí, nuestra alberca está abierta todos los días de 7:00 AM a 10:00 PM. Las toallas se proporcionan en el área.", Category: "Amenidades"},
		{Question: "¿Qué opciones de comida tienen?", Answer: "Contamos con un restaurante que sirve desayuno, comida y cena. También ofrecemos servicio a la habitación.", Category: "Gastronomía"},
		{Question: "¿Tienen estacionamiento?", Answer: "Sí, ofrecemos estacionamiento gratuito para todos los huéspedes. El servicio de valet está disponible con cargo adicional.", Category: "Servicios"},
		{Question: "¿Aceptan mascotas?", Answer: "Las mascotas pequeñas son bienvenidas en habitaciones pet-friendly designadas con un cargo adicional por noche. Por favor notifícanos al reservar.", Category: "Políticas"},
		{Question: "¿Ofrecen traslado al aeropuerto?", Answer: "Sí, el servicio de traslado al aeropuerto está disponible. Por favor reserva con al menos 24 horas de anticipación en recepción.", Category: "Servicios"},
		{Question: "¿Cuál es la política de cancelación?", Answer: "Cancelación gratuita hasta 48 horas antes del check-in. Las cancelaciones tardías se cobran una noche de estadía.", Category: "Políticas"},
		{Question: "¿Tienen gimnasio?", Answer: "Sí, nuestro gimnasio está abierto las 24 horas e incluye máquinas de cardio, pesas libres y tapetes de yoga.", Category: "Amenidades"},
		{Question: "¿Tienen spa?", Answer: "Sí, nuestro spa ofrece masajes, faciales y tratamientos corporales. Se recomienda hacer reservación.", Category: "Amenidades"},
		{Question: "¿Ofrecen servicio a la habitación?", Answer: "Sí, el servicio a la habitación está disponible de 6:00 AM a 11:00 PM. Un menú nocturno está disponible hasta la 1:00 AM.", Category: "Gastronomía"},
		{Question: "¿Tienen transporte a atracciones cercanas?", Answer: "Sí, ofrecemos transporte gratuito a las principales atracciones cercanas. Consulta en recepción los horarios disponibles.", Category: "Servicios"},
	}
}

// TrainingResponses returns the canned agent replies used by the training
// chat, keyed by tool type with a "general" fallback
func TrainingResponses() map[string][]string {
	return map[string][]string{
		"prices": {
			"Perfecto, ya registre la informacion de precios. Voy a usar estos datos para responder consultas sobre tarifas y costos. Si necesitas actualizar algun precio, solo dimelo.",
			"Excelente, tengo los precios guardados. Cuando un cliente pregunte por tarifas, usare esta informacion para darle una respuesta precisa.",
			"Listo, precios actualizados en mi base de conocimiento. Puedo responder consultas de precios a partir de ahora.",
		},
		"schedule": {
			"Perfecto, ya tengo los horarios registrados. Voy a informar a los clientes sobre disponibilidad y horarios de atencion cuando pregunten.",
			"Horarios guardados correctamente. Ahora puedo responder preguntas sobre cuando estan disponibles los servicios.",
			"Excelente, ya conozco los horarios. Si cambian, solo avisame y los actualizo de inmediato.",
		},
		"menu": {
			"Ya tengo el menu registrado. Cuando los clientes pregunten por opciones de comida, les dare esta informacion con gusto.",
			"Menu guardado. Puedo recomendar platillos y responder sobre opciones disponibles, precios y alergenos.",
			"Perfecto, ya conozco las opciones del menu. Si hay cambios de temporada, solo dimelo para actualizar.",
		},
		"faq": {
			"Pregunta frecuente registrada. La proxima vez que un cliente haga esta pregunta, la respondere automaticamente.",
			"FAQ guardada en mi conocimiento. Esto me ayuda a dar respuestas mas rapidas y precisas.",
			"Excelente, ya tengo esta pregunta y respuesta. Voy a usarla para atender consultas similares.",
		},
		"sheets": {
			"Datos de la hoja importados correctamente. Ahora tengo acceso a esta informacion para responder consultas.",
			"Informacion de Google Sheets procesada. Puedo usar estos datos para dar respuestas mas completas.",
			"Perfecto, ya integre los datos de la hoja. Si actualizas el documento, dimelo para re-importar.",
		},
		"general": {
			"Entendido, he guardado esta informacion. La usare para dar mejores respuestas a los clientes.",
			"Perfecto, ya lo tengo registrado. Esto me ayuda a conocer mejor tu negocio y atender mejor a los clientes.",
			"Excelente, informacion guardada. Cada detalle que me compartes me hace mas util para tu negocio.",
			"Gracias por compartir eso. Ya lo tengo en mi base de conocimiento y lo usare cuando sea relevante.",
			"Listo, aprendido. Si hay algo mas que deba saber sobre tu negocio, estoy aqui para escucharte.",
		},
	}
}

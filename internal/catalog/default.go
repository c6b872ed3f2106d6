package catalog

// Default returns the built-in Spanish screening battery: fifteen items in
// three categories of five, plus the safety item. Callers receive a fresh
// copy; the returned catalog is theirs to hold for the process lifetime.
func Default() *Catalog {
	return &Catalog{
		Items: []Item{
			// Estrés y nerviosismo (1-5)
			{ID: 1, Text: "¿Sientes que tu cabeza no para de dar vueltas con preocupaciones?", Category: CategoryStress},
			{ID: 2, Text: "¿Te cuesta relajarte aunque tengas tiempo libre?", Category: CategoryStress},
			{ID: 3, Text: "¿Has tenido noches en que el sueño no llega o se corta por pensamientos?", Category: CategoryStress},
			{ID: 4, Text: "¿Tu cuerpo se tensa (palpitaciones, presión, sudor) cuando estás bajo presión?", Category: CategoryStress},
			{ID: 5, Text: "¿Vives con la sensación de estar \"en alerta\" aunque no pase nada grave?", Category: CategoryStress},

			// Ánimo y energía (6-10)
			{ID: 6, Text: "¿Últimamente te cuesta encontrar ganas para lo cotidiano?", Category: CategoryMood},
			{ID: 7, Text: "¿Sientes que pocas cosas te entusiasman o te llenan de ilusión?", Category: CategoryMood},
			{ID: 8, Text: "¿Notas tu energía baja, incluso en días tranquilos?", Category: CategoryMood},
			{ID: 9, Text: "¿Las emociones negativas se quedan contigo más tiempo del que quisieras?", Category: CategoryMood},
			{ID: 10, Text: "¿Te has descubierto más irritable o de mal humor sin motivo claro?", Category: CategoryMood},

			// Confianza y disfrute (11-15)
			{ID: 11, Text: "¿Sientes que te guardas lo que te pasa porque no sabes con quién hablarlo?", Category: CategoryConfidence},
			{ID: 12, Text: "¿Dudas de ti mismo/a cuando tienes que enfrentar problemas o decisiones?", Category: CategoryConfidence},
			{ID: 13, Text: "¿Te viene seguido la idea de que \"no estás dando la talla\"?", Category: CategoryConfidence},
			{ID: 14, Text: "¿Actividades que antes disfrutabas hoy ya no te generan lo mismo?", Category: CategoryConfidence},
			{ID: 15, Text: "¿Tu cabeza se queda atrapada en pensamientos negativos que dan vueltas y vueltas?", Category: CategoryConfidence},
		},
		Safety: SafetyItem{
			ID:   100,
			Text: "En las últimas dos semanas, ¿has tenido pensamientos de hacerte daño o de que sería mejor no estar?",
		},
	}
}

// DefaultExtended returns the revised battery used with the four-tier
// scoring profile. Item 7 is reworded in a positive direction and scored
// reversed, so a raw 0 contributes 3 points.
func DefaultExtended() *Catalog {
	cat := Default()
	for i := range cat.Items {
		if cat.Items[i].ID == 7 {
			cat.Items[i].Text = "¿Sientes entusiasmo e ilusión por las cosas de tu día a día?"
			cat.Items[i].Reversed = true
		}
	}
	return cat
}

package i18n

// Locale is a supported dashboard language code
type Locale string

const (
	LocaleES Locale = "es"
	LocaleEN Locale = "en"
)

// Translations is the resolved dictionary for one locale. The dashboard only
// needs the labels the API itself emits; page-level copy lives client side.
type Translations struct {
	Locale Locale `json:"locale"`

	Common struct {
		Save    string `json:"save"`
		Cancel  string `json:"cancel"`
		Delete  string `json:"delete"`
		Loading string `json:"loading"`
	} `json:"common"`

	Agents struct {
		Title        string `json:"title"`
		NewAgent     string `json:"new_agent"`
		AgentCreated string `json:"agent_created"`
		AgentUpdated string `json:"agent_updated"`
		AgentDeleted string `json:"agent_deleted"`
	} `json:"agents"`

	Faqs struct {
		Added           string `json:"added"`
		Updated         string `json:"updated"`
		Deleted         string `json:"deleted"`
		TemplatesLoaded string `json:"templates_loaded"`
	} `json:"faqs"`

	Chat struct {
		Today     string `json:"today"`
		Yesterday string `json:"yesterday"`
		ThisWeek  string `json:"this_week"`
		Older     string `json:"older"`
	} `json:"chat"`
}

var es = func() Translations {
	var t Translations
	t.Locale = LocaleES
	t.Common.Save = "Guardar"
	t.Common.Cancel = "Cancelar"
	t.Common.Delete = "Eliminar"
	t.Common.Loading = "Cargando..."
	t.Agents.Title = "Agentes"
	t.Agents.NewAgent = "Nuevo agente"
	t.Agents.AgentCreated = "Agente creado"
	t.Agents.AgentUpdated = "Agente actualizado"
	t.Agents.AgentDeleted = "Agente eliminado"
	t.Faqs.Added = "Pregunta agregada"
	t.Faqs.Updated = "Pregunta actualizada"
	t.Faqs.Deleted = "Pregunta eliminada"
	t.Faqs.TemplatesLoaded = "Plantillas cargadas"
	t.Chat.Today = "Hoy"
	t.Chat.Yesterday = "Ayer"
	t.Chat.ThisWeek = "Esta semana"
	t.Chat.Older = "Anteriores"
	return t
}()

var en = func() Translations {
	var t Translations
	t.Locale = LocaleEN
	t.Common.Save = "Save"
	t.Common.Cancel = "Cancel"
	t.Common.Delete = "Delete"
	t.Common.Loading = "Loading..."
	t.Agents.Title = "Agents"
	t.Agents.NewAgent = "New agent"
	t.Agents.AgentCreated = "Agent created"
	t.Agents.AgentUpdated = "Agent updated"
	t.Agents.AgentDeleted = "Agent deleted"
	t.Faqs.Added = "FAQ added"
	t.Faqs.Updated = "FAQ updated"
	t.Faqs.Deleted = "FAQ deleted"
	t.Faqs.TemplatesLoaded = "Templates loaded"
	t.Chat.Today = "Today"
	t.Chat.Yesterday = "Yesterday"
	t.Chat.ThisWeek = "This week"
	t.Chat.Older = "Older"
	return t
}()

var dictionaries = map[Locale]Translations{
	LocaleES: es,
	LocaleEN: en,
}

// ValidLocale reports whether l is a supported locale code
func ValidLocale(l Locale) bool {
	_, ok := dictionaries[l]
	return ok
}

// Resolve returns the dictionary for l, falling back to Spanish
func Resolve(l Locale) Translations {
	if t, ok := dictionaries[l]; ok {
		return t
	}
	return es
}

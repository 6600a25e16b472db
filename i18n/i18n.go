package i18n

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/jeandeaual/go-locale"
)

var (
	mu   sync.RWMutex
	lang = "en"
)

var supported = []string{"pt", "es", "ru"}

var translations = map[string]map[string]string{
	"Timers": {
		"pt": "Temporizadores",
		"es": "Temporizadores",
		"ru": "Таймеры",
	},
	"Add Timer": {
		"pt": "Adicionar",
		"es": "Añadir",
		"ru": "Добавить",
	},
	"View History": {
		"pt": "Histórico",
		"es": "Historial",
		"ru": "История",
	},
	"Export Data": {
		"pt": "Exportar",
		"es": "Exportar",
		"ru": "Экспорт",
	},
	"Start": {
		"pt": "Iniciar",
		"es": "Iniciar",
		"ru": "Старт",
	},
	"Pause": {
		"pt": "Pausar",
		"es": "Pausar",
		"ru": "Пауза",
	},
	"Reset": {
		"pt": "Resetar",
		"es": "Reiniciar",
		"ru": "Сброс",
	},
	"Start All": {
		"pt": "Iniciar todos",
		"es": "Iniciar todos",
		"ru": "Запустить все",
	},
	"Pause All": {
		"pt": "Pausar todos",
		"es": "Pausar todos",
		"ru": "Пауза для всех",
	},
	"Reset All": {
		"pt": "Resetar todos",
		"es": "Reiniciar todos",
		"ru": "Сбросить все",
	},
	"Name": {
		"pt": "Nome",
		"es": "Nombre",
		"ru": "Название",
	},
	"Duration": {
		"pt": "Duração",
		"es": "Duración",
		"ru": "Длительность",
	},
	"seconds or mm:ss": {
		"pt": "segundos ou mm:ss",
		"es": "segundos o mm:ss",
		"ru": "секунды или мм:сс",
	},
	"Category": {
		"pt": "Categoria",
		"es": "Categoría",
		"ru": "Категория",
	},
	"Halfway Alert": {
		"pt": "Alerta na metade",
		"es": "Aviso a la mitad",
		"ru": "Оповещение на середине",
	},
	"Cancel": {
		"pt": "Cancelar",
		"es": "Cancelar",
		"ru": "Отмена",
	},
	"Close": {
		"pt": "Fechar",
		"es": "Cerrar",
		"ru": "Закрыть",
	},
	"OK": {
		"ru": "ОК",
	},
	"Error": {
		"pt": "Erro",
		"es": "Error",
		"ru": "Ошибка",
	},
	"Please enter all fields": {
		"pt": "Preencha todos os campos",
		"es": "Complete todos los campos",
		"ru": "Заполните все поля",
	},
	"Halfway": {
		"pt": "Metade",
		"es": "Mitad",
		"ru": "Половина",
	},
	"You're halfway through \"%s\"!": {
		"pt": "Você está na metade de \"%s\"!",
		"es": "¡Vas por la mitad de \"%s\"!",
		"ru": "Половина «%s» позади!",
	},
	"Timer \"%s\" is completed!": {
		"pt": "O temporizador \"%s\" terminou!",
		"es": "¡El temporizador \"%s\" ha terminado!",
		"ru": "Таймер «%s» завершён!",
	},
	"Paused": {
		"pt": "Pausado",
		"es": "En pausa",
		"ru": "Пауза",
	},
	"Running": {
		"pt": "Em andamento",
		"es": "En marcha",
		"ru": "Идёт",
	},
	"Completed": {
		"pt": "Concluído",
		"es": "Completado",
		"ru": "Завершён",
	},
	"Timer History": {
		"pt": "Histórico de temporizadores",
		"es": "Historial de temporizadores",
		"ru": "История таймеров",
	},
	"No completed timers yet.": {
		"pt": "Nenhum temporizador concluído ainda.",
		"es": "Aún no hay temporizadores completados.",
		"ru": "Завершённых таймеров пока нет.",
	},
	"Completed at: %s": {
		"pt": "Concluído em: %s",
		"es": "Completado el: %s",
		"ru": "Завершён: %s",
	},
	"Clear History": {
		"pt": "Limpar histórico",
		"es": "Borrar historial",
		"ru": "Очистить историю",
	},
	"Confirm": {
		"pt": "Confirmar",
		"es": "Confirmar",
		"ru": "Подтверждение",
	},
	"Are you sure you want to clear history?": {
		"pt": "Tem certeza de que deseja limpar o histórico?",
		"es": "¿Seguro que quieres borrar el historial?",
		"ru": "Очистить историю?",
	},
	"No history data to export.": {
		"pt": "Não há histórico para exportar.",
		"es": "No hay historial para exportar.",
		"ru": "Нет данных для экспорта.",
	},
	"History exported to %s": {
		"pt": "Histórico exportado para %s",
		"es": "Historial exportado a %s",
		"ru": "История сохранена в %s",
	},
	"Show": {
		"pt": "Mostrar",
		"es": "Mostrar",
		"ru": "Показать",
	},
	"Pause Everything": {
		"pt": "Pausar tudo",
		"es": "Pausar todo",
		"ru": "Приостановить всё",
	},
}

func init() {
	Detect(os.Getenv)
}

// Detect picks the language from TIMERBOARD_LANG, falling back to the
// system locale and then English.
func Detect(getenv func(string) string) {
	if forcedLang := strings.TrimSpace(getenv("TIMERBOARD_LANG")); forcedLang != "" {
		slog.Debug("TIMERBOARD_LANG is set", "lang", forcedLang)
		SetLang(forcedLang)
		return
	}

	userLocales, err := locale.GetLocales()
	if err != nil || len(userLocales) == 0 {
		slog.Debug("Could not get user locale, defaulting to english", "error", err)
		SetLang("en")
		return
	}
	slog.Debug("Detected user locale", "locale", userLocales[0])
	SetLang(userLocales[0])
}

// SetLang selects the language by locale prefix ("pt_BR" selects "pt").
// Unsupported locales select English.
func SetLang(l string) {
	l = strings.ToLower(strings.TrimSpace(l))
	chosen := "en"
	for _, s := range supported {
		if strings.HasPrefix(l, s) {
			chosen = s
			break
		}
	}
	mu.Lock()
	lang = chosen
	mu.Unlock()
}

// T returns the translation of key, or key itself.
func T(key string) string {
	mu.RLock()
	defer mu.RUnlock()
	if translated, ok := translations[key][lang]; ok {
		return translated
	}
	return key
}

// Tf translates key and formats it with args.
func Tf(key string, args ...any) string {
	return fmt.Sprintf(T(key), args...)
}

// GetLang returns the active language code.
func GetLang() string {
	mu.RLock()
	defer mu.RUnlock()
	return lang
}

package locale

// builtin holds the stock templates. Keys mirror the rule codes of the
// validate package.
var builtin = map[string]map[string]string{
	"en": {
		"validation.equal":                 "'{PropertyName}' must be equal to '{ComparisonValue}'.",
		"validation.not_equal":             "'{PropertyName}' must not be equal to '{ComparisonValue}'.",
		"validation.greater_than":          "'{PropertyName}' must be greater than '{ComparisonValue}'.",
		"validation.greater_than_or_equal": "'{PropertyName}' must be greater than or equal to '{ComparisonValue}'.",
		"validation.less_than":             "'{PropertyName}' must be less than '{ComparisonValue}'.",
		"validation.less_than_or_equal":    "'{PropertyName}' must be less than or equal to '{ComparisonValue}'.",
		"validation.inclusive_between":     "'{PropertyName}' must be between {From} and {To}. You entered {PropertyValue}.",
		"validation.exclusive_between":     "'{PropertyName}' must be between {From} and {To} (exclusive). You entered {PropertyValue}.",
		"validation.not_empty":             "'{PropertyName}' must not be empty.",
		"validation.length":                "'{PropertyName}' must be between {MinLength} and {MaxLength} characters. You entered {TotalLength} characters.",
		"validation.min_length":            "The length of '{PropertyName}' must be at least {MinLength} characters. You entered {TotalLength} characters.",
		"validation.max_length":            "The length of '{PropertyName}' must be {MaxLength} characters or fewer. You entered {TotalLength} characters.",
		"validation.matches":               "'{PropertyName}' is not in the correct format.",
		"validation.email":                 "'{PropertyName}' is not a valid email address.",
		"validation.uuid":                  "'{PropertyName}' is not a valid UUID.",
		"validation.must":                  "The specified condition was not met for '{PropertyName}'.",
		"validation.min_items":             "'{PropertyName}' must contain at least {Min} items.",
		"validation.max_items":             "'{PropertyName}' must contain no more than {Max} items.",
		"validation.exact_items":           "'{PropertyName}' must contain exactly {Count} items.",
	},
	"es": {
		"validation.equal":                 "'{PropertyName}' debe ser igual a '{ComparisonValue}'.",
		"validation.not_equal":             "'{PropertyName}' no debe ser igual a '{ComparisonValue}'.",
		"validation.greater_than":          "'{PropertyName}' debe ser mayor que '{ComparisonValue}'.",
		"validation.greater_than_or_equal": "'{PropertyName}' debe ser mayor o igual que '{ComparisonValue}'.",
		"validation.less_than":             "'{PropertyName}' debe ser menor que '{ComparisonValue}'.",
		"validation.less_than_or_equal":    "'{PropertyName}' debe ser menor o igual que '{ComparisonValue}'.",
		"validation.inclusive_between":     "'{PropertyName}' debe estar entre {From} y {To}. Ha introducido {PropertyValue}.",
		"validation.exclusive_between":     "'{PropertyName}' debe estar entre {From} y {To} (exclusivo). Ha introducido {PropertyValue}.",
		"validation.not_empty":             "'{PropertyName}' no debe estar vacío.",
		"validation.length":                "'{PropertyName}' debe tener entre {MinLength} y {MaxLength} caracteres. Ha introducido {TotalLength} caracteres.",
		"validation.min_length":            "'{PropertyName}' debe tener al menos {MinLength} caracteres. Ha introducido {TotalLength} caracteres.",
		"validation.max_length":            "'{PropertyName}' debe tener como máximo {MaxLength} caracteres. Ha introducido {TotalLength} caracteres.",
		"validation.matches":               "'{PropertyName}' no tiene el formato correcto.",
		"validation.email":                 "'{PropertyName}' no es una dirección de correo válida.",
		"validation.uuid":                  "'{PropertyName}' no es un UUID válido.",
		"validation.must":                  "No se cumplió la condición especificada para '{PropertyName}'.",
		"validation.min_items":             "'{PropertyName}' debe contener al menos {Min} elementos.",
		"validation.max_items":             "'{PropertyName}' no debe contener más de {Max} elementos.",
		"validation.exact_items":           "'{PropertyName}' debe contener exactamente {Count} elementos.",
	},
	"de": {
		"validation.equal":                 "'{PropertyName}' muss gleich '{ComparisonValue}' sein.",
		"validation.not_equal":             "'{PropertyName}' darf nicht gleich '{ComparisonValue}' sein.",
		"validation.greater_than":          "'{PropertyName}' muss größer als '{ComparisonValue}' sein.",
		"validation.greater_than_or_equal": "'{PropertyName}' muss größer oder gleich '{ComparisonValue}' sein.",
		"validation.less_than":             "'{PropertyName}' muss kleiner als '{ComparisonValue}' sein.",
		"validation.less_than_or_equal":    "'{PropertyName}' muss kleiner oder gleich '{ComparisonValue}' sein.",
		"validation.inclusive_between":     "'{PropertyName}' muss zwischen {From} und {To} liegen. Sie haben {PropertyValue} eingegeben.",
		"validation.exclusive_between":     "'{PropertyName}' muss zwischen {From} und {To} liegen (exklusiv). Sie haben {PropertyValue} eingegeben.",
		"validation.not_empty":             "'{PropertyName}' darf nicht leer sein.",
		"validation.length":                "'{PropertyName}' muss zwischen {MinLength} und {MaxLength} Zeichen lang sein. Sie haben {TotalLength} Zeichen eingegeben.",
		"validation.min_length":            "'{PropertyName}' muss mindestens {MinLength} Zeichen lang sein. Sie haben {TotalLength} Zeichen eingegeben.",
		"validation.max_length":            "'{PropertyName}' darf höchstens {MaxLength} Zeichen lang sein. Sie haben {TotalLength} Zeichen eingegeben.",
		"validation.matches":               "'{PropertyName}' hat nicht das richtige Format.",
		"validation.email":                 "'{PropertyName}' ist keine gültige E-Mail-Adresse.",
		"validation.uuid":                  "'{PropertyName}' ist keine gültige UUID.",
		"validation.must":                  "Die angegebene Bedingung für '{PropertyName}' wurde nicht erfüllt.",
		"validation.min_items":             "'{PropertyName}' muss mindestens {Min} Elemente enthalten.",
		"validation.max_items":             "'{PropertyName}' darf höchstens {Max} Elemente enthalten.",
		"validation.exact_items":           "'{PropertyName}' muss genau {Count} Elemente enthalten.",
	},
	"fr": {
		"validation.equal":                 "'{PropertyName}' doit être égal à '{ComparisonValue}'.",
		"validation.not_equal":             "'{PropertyName}' ne doit pas être égal à '{ComparisonValue}'.",
		"validation.greater_than":          "'{PropertyName}' doit être supérieur à '{ComparisonValue}'.",
		"validation.greater_than_or_equal": "'{PropertyName}' doit être supérieur ou égal à '{ComparisonValue}'.",
		"validation.less_than":             "'{PropertyName}' doit être inférieur à '{ComparisonValue}'.",
		"validation.less_than_or_equal":    "'{PropertyName}' doit être inférieur ou égal à '{ComparisonValue}'.",
		"validation.inclusive_between":     "'{PropertyName}' doit être compris entre {From} et {To}. Vous avez saisi {PropertyValue}.",
		"validation.exclusive_between":     "'{PropertyName}' doit être compris entre {From} et {To} (exclusif). Vous avez saisi {PropertyValue}.",
		"validation.not_empty":             "'{PropertyName}' ne doit pas être vide.",
		"validation.length":                "'{PropertyName}' doit contenir entre {MinLength} et {MaxLength} caractères. Vous avez saisi {TotalLength} caractères.",
		"validation.min_length":            "'{PropertyName}' doit contenir au moins {MinLength} caractères. Vous avez saisi {TotalLength} caractères.",
		"validation.max_length":            "'{PropertyName}' doit contenir au plus {MaxLength} caractères. Vous avez saisi {TotalLength} caractères.",
		"validation.matches":               "'{PropertyName}' n'a pas le bon format.",
		"validation.email":                 "'{PropertyName}' n'est pas une adresse e-mail valide.",
		"validation.uuid":                  "'{PropertyName}' n'est pas un UUID valide.",
		"validation.must":                  "La condition spécifiée pour '{PropertyName}' n'a pas été respectée.",
		"validation.min_items":             "'{PropertyName}' doit contenir au moins {Min} éléments.",
		"validation.max_items":             "'{PropertyName}' ne doit pas contenir plus de {Max} éléments.",
		"validation.exact_items":           "'{PropertyName}' doit contenir exactement {Count} éléments.",
	},
}

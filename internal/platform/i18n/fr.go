package i18n

var french = map[string]string{
	// Layout
	"app.title":            "Fonctions d'onde, orbitales atomiques et physiques NBA",
	"header.github":        "Voir sur GitHub",
	"footer.credits":       "Les graphiques sont calculés sur le serveur. Données NBA : physiques des joueurs par saison.",
	"nav.section.quantum":  "Chimie quantique",
	"nav.section.nba":      "Explorateur NBA",
	"nav.home":             "Accueil",
	"nav.particle_box":     "Particule dans une boîte",
	"nav.radial":           "Partie radiale des OA",
	"nav.angular":          "Partie angulaire des OA",
	"nav.orbitals":         "Nuage électronique des OA",
	"nav.nba_scatter":      "Nuage de points",
	"nav.nba_matrix":       "Matrice de nuages",
	"nav.nba_pivot":        "Tableau croisé",
	"nav.language":         "Langue",
	"lang.en":              "English",
	"lang.fr":              "Français",
	"control.on":           "Oui",
	"control.off":          "Non",
	"control.replot":       "Retracer",
	"control.run":          "lancer",
	"control.apply":        "Appliquer",
	"control.points":       "Nombre de points",
	"control.wavefunction": "Fonction d'onde",

	// Home
	"home.heading": "Démonstrations interactives",
	"home.intro":   "Choisissez une démonstration. Chaque contrôle recalcule son graphique sur le serveur ; rien n'est calculé dans le navigateur.",

	// Particle in a box
	"pbox.heading":       "Particule dans une boîte",
	"pbox.select_p":      "Choisir le nombre quantique : p",
	"pbox.energy":        "Énergie du niveau p = %d : %.2f eV",
	"pbox.nodes":         "Nombre de nœuds : %d",
	"pbox.stream":        "Suivre le tirage",
	"pbox.stream.status": "{accepted} acceptés sur {target} après {tries} essais",
	"pbox.doc.heading":   "Théorie : particule dans une boîte",
	"pbox.doc.p1":        "On considère les solutions de l'équation de Schrödinger pour une particule de masse m libre de se déplacer sur un segment de longueur L, x dans [0, L] : le puits de potentiel infini.",
	"pbox.doc.p2":        "Les fonctions d'onde s'annulent sur les deux parois et sont normées. Ces conditions quantifient l'énergie avec un nombre quantique p = 1, 2, 3 et ainsi de suite.",
	"pbox.doc.p3":        "Les solutions s'écrivent φp(x) = √(2/L) sin(pπx/L) avec les énergies εp = h²p²/(8mL²). Le panneau inférieur montre des positions tirées selon |φp|² : chaque point accepté est une mesure possible de la position.",

	// Radial part
	"radial.heading":        "Orbitales atomiques - Densité de probabilité radiale",
	"radial.select":         "Choisir les nombres quantiques",
	"radial.integrate":      "Intégrer la densité de probabilité radiale",
	"radial.rmin":           "r min (Å)",
	"radial.rmax":           "r max (Å)",
	"radial.compute":        "calculer",
	"radial.result":         "Résultat de l'intégration",
	"radial.result.value":   "P(e⁻ ∈ [%.1f ; %.1f]) = %.2f",
	"radial.result.hint":    "Cliquez sur le bouton calculer pour intégrer la densité de probabilité radiale.",
	"radial.error.n_max":    "La valeur maximale de n est {{.Max}}.",
	"radial.error.n_min":    "La valeur minimale de n est 1.",
	"radial.error.reduce_l": "l est compris dans [0, n-1]. Diminuez d'abord l. l = {{.L}}, n = {{.N}}.",
	"radial.error.l_max":    "Pour n = {{.N}}, la valeur maximale de l est {{.Max}}.",
	"radial.error.l_min":    "La valeur minimale de l est 0.",
	"radial.doc.heading":    "Théorie : partie radiale des orbitales atomiques",
	"radial.doc.p1":         "Les orbitales atomiques sont des fonctions d'onde monoélectroniques, solutions de l'équation de Schrödinger pour les hydrogénoïdes. Elles se factorisent en une partie radiale Rn,l(r) et une partie angulaire Yl,ml(θ, φ).",
	"radial.doc.p2":         "La partie radiale contrôle l'extension de l'orbitale. La densité de probabilité radiale D(r) = r²Rn,l(r)² donne la probabilité de trouver l'électron dans une fine couche à la distance r du noyau.",
	"radial.doc.p3":         "L'intégrale de D(r) entre deux rayons donne la probabilité de trouver l'électron entre ces deux sphères.",

	// Angular part
	"angular.heading":     "Orbitales atomiques - Forme des fonctions angulaires",
	"angular.select":      "Choisir la partie angulaire :",
	"angular.density":     "Densité de probabilité",
	"angular.nodal":       "Plans nodaux : %d",
	"angular.describe":    "OA %s, fonction %s : l = %d et ml = %s, %d plan(s) nodal(aux).",
	"angular.doc.heading": "Théorie : partie angulaire des orbitales atomiques",
	"angular.doc.p1":      "La partie angulaire Yl,ml(θ, φ) d'une orbitale atomique est une harmonique sphérique réelle. Elle dépend des nombres quantiques l et ml.",
	"angular.doc.p2":      "La partie angulaire contrôle la forme et l'orientation de l'orbitale. La courbe polaire montre |Y| dans le plan xOz : en rouge où Y est positive, en bleu où elle est négative. Les droites orange marquent les plans nodaux.",

	// Atomic orbitals
	"orbitals.heading":     "Orbitales atomiques - Aperçu du nuage électronique",
	"orbitals.select":      "Orbitale atomique :",
	"orbitals.sign":        "Signe",
	"orbitals.nodal":       "Plans nodaux",
	"orbitals.doc.heading": "Théorie : orbitales atomiques",
	"orbitals.doc.p1":      "Les orbitales atomiques sont le produit de la partie radiale et de la partie angulaire. Leur carré donne la densité de probabilité de présence de l'électron en un point de l'espace.",
	"orbitals.doc.p2":      "La figure montre le nuage électronique dans le plan xOz. Chaque point est une position tirée selon |ψ|², colorée selon le signe de ψ si demandé. Les cercles sont les surfaces nodales radiales et les tirets les surfaces nodales angulaires.",

	// NBA
	"nba.heading":        "Physiques des joueurs NBA",
	"nba.x":              "axe x",
	"nba.y":              "axe y",
	"nba.dimensions":     "Dimensions",
	"nba.value":          "Valeur",
	"nba.source":         "%d joueurs chargés depuis %s.",
	"nba.scatter.doc":    "Choisissez deux colonnes numériques. Les points sont colorés par poste ; les panneaux latéraux montrent la distribution de chaque axe par poste.",
	"nba.matrix.doc":     "Sélectionnez entre une et six colonnes numériques pour les comparer deux à deux.",
	"nba.pivot.doc":      "Moyenne de la colonne choisie par quartile de taille (lignes) et par poste (colonnes).",
	"nba.pivot.download": "Télécharger le JSON",

	// Figures
	"plot.pbox.title":    "Fonctions d'onde de la particule dans une boîte : p = %d",
	"plot.pbox.samples":  "points tirés, npts = %d",
	"plot.density":       "densité de probabilité",
	"plot.histogram":     "histogramme",
	"plot.wavefunction":  "fonction d'onde",
	"plot.nodes":         "nœuds",
	"plot.x":             "x (Å)",
	"plot.z":             "z (Å)",
	"plot.r":             "r (Å)",
	"plot.radial.title":  "Densité de probabilité radiale : n = %d, l = %d",
	"plot.integration":   "intégration",
	"plot.angular.title": "Harmonique sphérique dans le plan (xOz)",
	"plot.positive":      "partie positive",
	"plot.negative":      "partie négative",
	"plot.nodal_plane":   "plan nodal",
	"plot.radial_node":   "surface nodale radiale",
	"plot.angular_node":  "surface nodale angulaire",
	"plot.orbital.title": "Nuage électronique de l'orbitale %s",

	// Errors
	"error.UNKNOWN":              "Une erreur est survenue.",
	"error.INVALID_ARGUMENT":     "Valeur invalide pour {{.Field}}.",
	"error.OUT_OF_RANGE":         "{{.Field}} doit être compris entre {{.Min}} et {{.Max}}.",
	"error.UNKNOWN_COLUMN":       "Colonne inconnue {{.Column}}.",
	"error.NOT_NUMERIC_COLUMN":   "La colonne {{.Column}} n'est pas numérique.",
	"error.UNKNOWN_ORBITAL":      "Orbitale inconnue {{.Orbital}}.",
	"error.DATASET_UNAVAILABLE":  "Le jeu de données est indisponible.",
	"error.NOT_FOUND":            "Page introuvable.",
	"error.title_not_found":      "Page introuvable",
	"error.title_server_error":   "Une erreur est survenue",
	"error.message_not_found":    "La page demandée n'existe pas.",
	"error.message_server_error": "Le graphique n'a pas pu être généré. Veuillez réessayer.",
	"error.heading":              "Erreur",
	"error.back":                 "Retour aux démonstrations",
}

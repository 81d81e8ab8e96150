package ui

// User-facing message bank. Commands format their results from these so the
// wording stays in one place.
const (
	WelcomeMessage = "Welcome to Diet Manager! How may I assist you today?"

	InvalidCommandMessage = "Sorry, the command you have entered is invalid."
	InvalidFormatMessage  = "Sorry, that is an invalid command format."
	FileErrorMessage      = "An error has occurred with the data files."
	ExitAppMessage        = "Thanks for using Diet Manager! See you again soon. :)"

	InvalidNameMessage       = "Sorry, that is an invalid name."
	InvalidAgeMessage        = "Sorry, that is an invalid age."
	InvalidGenderMessage     = "Sorry, that is an invalid gender."
	InvalidHeightMessage     = "Sorry, that is an invalid height."
	InvalidWeightMessage     = "Sorry, that is an invalid weight."
	InvalidWeightGoalMessage = "Sorry, that is an invalid weight goal."

	ProfileUpdateMessage   = "Your profile has been successfully updated."
	ProfileNotFoundMessage = "No existing profile found. To create a new profile, enter:\n" +
		"set-profile {name} {age} {gender} {height} {weight} {weight goal}"
	InvalidProfileMessage = "Invalid profile detected. " +
		"Please set a new profile using the set-profile command."

	NameChangeMessage       = "Your username has been changed to "
	AgeChangeMessage        = "Your age has been changed to "
	GenderChangeMessage     = "Your gender has been changed to "
	HeightChangeMessage     = "Your height has been changed to "
	WeightChangeMessage     = "Your weight has been changed to "
	WeightGoalChangeMessage = "Your weight goal has been changed to "

	MealTypeError = "You have given wrong description of time!!! " +
		"Choose from: morning/afternoon/night."
	InvalidDateMessage = "You should choose a date from {Monday} to {Sunday}! " +
		"Either uppercase or lowercase is supported!"
	NoMealRecordedMessage = "There are no meals recorded for this date and time."

	CheckWeightRecordMessage  = "Here is your weight changes record:"
	NoWeightRecordMessage     = "There are no weight records yet. Record one with set-weight."
	WeightDeletedMessage      = " has been removed successfully!"
	InvalidIndexMessage       = "Invalid index of weight! Please check and try again."
	WeightLossMessage         = "Great job! You have lost %.2f kg since the beginning!"
	WeightNoChangeMessage     = "No Pain No Gain! You have not lost weight yet! Strive on!"
	WeightGainMessage         = "Maintain your diet! You have gained %.2f kg since the beginning!"
	WeightGoalAchievedMessage = "YOU DID IT! You have achieved your weight goal!\n" +
		"You can also set a new weight goal using set-weight-goal NEW_GOAL"
	WeightGoalNotAchievedMessage = "%.2f kg more to go to meet your weight goal!"

	FoodDatabaseMessage      = "These are the foods stored in our database:"
	FoodDatabaseEmptyMessage = "The food database is empty. Add foods with addf."
	FoodNotFoundMessage      = "This food is not in the database."
	InvalidFoodFormatError   = "Some food/foods are not added due to invalid calories info."

	CaloriesMessage          = "Total calculable calories intake for the entire day: "
	TimeCaloriesMessage      = "total calculable calories intake: "
	MissingCaloriesMessage   = "NOTE: There are foods without calculable calories."
	NoCaloriesMessage        = "There are no calculable calories data for the entire day."
	NoTimeCaloriesMessage    = "there are no calculable calories data."
	CalculateCaloriesMessage = "Your Calories intake during the given period is "

	InvalidCaloriesRequirementError = "You have given invalid activity level."
	SufficientCaloriesMessage       = "Well done!!! You have consumed sufficient calories."
	InsufficientCaloriesMessage     = "Ohh no!!! You have consumed too little calories."
	ExcessCaloriesMessage           = "Ohh no!!! You have consumed too much calories."

	NoRecipeMessage            = "No recipe has been recommended yet. Try new-recipe first."
	EmptyRecipeSourceMessage   = "The food database is empty, so no recipe can be recommended."
	NoRecipeFitMessage         = "No food in the database fits within your calorie requirement."
	InvalidRecipeFormatMessage = "Sorry, that is an invalid number of food types."
)

// FunctionList is the help table rendered by the help command.
const FunctionList = `Functions:
  set-profile NAME AGE GENDER HEIGHT WEIGHT WEIGHTGOAL   Set user's profile data
  profile                                                View user profile details
  set-name / set-age / set-gender / set-height           Update one profile field
  set-weight / set-weight-goal                           Update weight or weight goal
  check-weight-progress                                  List weight progress
  delete-weight INDEX                                    Delete weight from the progress list
  record-meal DATE TIME_PERIOD /FOOD_NAME -- CALORIE     Record meal info
  check-meal DATE TIME_PERIOD                            Check meals eaten
  calculate DATE                                         Calorie intake for the day
  calculate DATE1->DATE2                                 Calorie intake from DATE1 to DATE2
  check-calories DATE ACTIVITY_LEVEL                     Daily totals against your requirement
  check-bmi                                              Show BMI and its category
  list-food                                              List all foods in the database
  addf /FOOD_NAME -- CALORIES                            Add new food info into the database
  delf FOOD_NAME                                         Delete food info from the database
  new-recipe MAX_FOOD_TYPES ACTIVITY_LEVEL               Recommend a recipe from the database
  show-recipe                                            Show the recommended recipe
  help                                                   Show this function table
  exit                                                   Exit the application`

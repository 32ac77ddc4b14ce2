package actions

// catalog lists every remote method exposed through a Namespace, grouped by
// namespace in display order.
var catalog = []Method{
	// account
	{
		Namespace: "account", Name: "getCounters", Remote: "account.getCounters",
		Summary: "Returns non-null values of user counters.",
		Params: []Param{
			{Name: "filter", Type: ParamArray, Description: "Counters to be returned."},
		},
	},
	{
		Namespace: "account", Name: "setNameInMenu", Remote: "account.setNameInMenu",
		Summary: "Sets an application screen name (up to 17 characters), that is shown to the user in the left menu.",
		Params: []Param{
			{Name: "user_id", Type: ParamInteger, Description: "User ID."},
			{Name: "name", Type: ParamString, Description: "Application screen name."},
		},
	},
	{
		Namespace: "account", Name: "setOnline", Remote: "account.setOnline",
		Summary: "Marks the current user as online for 15 minutes.",
		Params: []Param{
			{Name: "voip", Type: ParamBoolean, Description: "'1' if videocalls are available for current device."},
		},
	},
	{Namespace: "account", Name: "setOffline", Remote: "account.setOffline", Summary: "Marks a current user as offline."},
	{
		Namespace: "account", Name: "lookupContacts", Remote: "account.lookupContacts",
		Summary: "Allows to search the VK users using phone numbers, e-mail addresses and user IDs on other services.",
		Params: []Param{
			{Name: "contacts", Type: ParamArray, Description: "List of contacts separated with commas"},
			{Name: "service", Type: ParamEnum, Values: []string{"email", "phone", "twitter", "facebook", "odnoklassniki", "instagram", "google"}, Description: "String identifier of a service which contacts are used for searching. Possible values: email, phone, twitter, facebook, odnoklassniki, instagram, google"},
			{Name: "mycontact", Type: ParamString, Description: "Contact of a current user on a specified service"},
			{Name: "return_all", Type: ParamBoolean, Description: "'1' – also return contacts found using this service before, '0' – return only contacts found using 'contacts' field."},
			{Name: "fields", Type: ParamArray, Description: "Profile fields to return. Possible values: 'nickname, domain, sex, bdate, city, country, timezone, photo_50, photo_100, photo_200_orig, has_mobile, contacts, education, online, relation, last_seen, status, can_write_private_message, can_see_all_posts, can_post, universities'."},
		},
	},
	{
		Namespace: "account", Name: "registerDevice", Remote: "account.registerDevice",
		Summary: "Subscribes an iOS/Android/Windows Phone-based device to receive push notifications.",
		Params: []Param{
			{Name: "token", Type: ParamString, Description: "Device token used to send notifications. (for mpns, the token shall be URL for sending of notifications)"},
			{Name: "device_model", Type: ParamString, Description: "String name of device model."},
			{Name: "device_year", Type: ParamInteger, Description: "Device year."},
			{Name: "device_id", Type: ParamString, Description: "Unique device ID."},
			{Name: "system_version", Type: ParamString, Description: "String version of device operating system."},
			{Name: "settings", Type: ParamString, Description: "Push settings in a special format."},
		},
	},
	{
		Namespace: "account", Name: "unregisterDevice", Remote: "account.unregisterDevice",
		Summary: "Unsubscribes a device from push notifications.",
		Params: []Param{
			{Name: "device_id", Type: ParamString, Description: "Unique device ID."},
		},
	},
	{
		Namespace: "account", Name: "setSilenceMode", Remote: "account.setSilenceMode",
		Summary: "Mutes push notifications for the set period of time.",
		Params: []Param{
			{Name: "device_id", Type: ParamString, Description: "Unique device ID."},
			{Name: "time", Type: ParamInteger, Description: "Time in seconds for what notifications should be disabled. '-1' to disable forever."},
			{Name: "peer_id", Type: ParamInteger, Description: "Destination ID. \"For user: 'User ID', e.g. '12345'. For chat: '2000000000' + 'Chat ID', e.g. '2000000001'. For community: '- Community ID', e.g. '-12345'. \""},
			{Name: "sound", Type: ParamInteger, Description: "'1' - to enable sound in this dialog, '0' - to disable sound. Only if 'peer_id' contains user or community ID."},
		},
	},
	{
		Namespace: "account", Name: "getPushSettings", Remote: "account.getPushSettings",
		Summary: "Gets settings of push notifications.",
		Params: []Param{
			{Name: "device_id", Type: ParamString, Description: "Unique device ID."},
		},
	},
	{
		Namespace: "account", Name: "setPushSettings", Remote: "account.setPushSettings",
		Summary: "Change push settings.",
		Params: []Param{
			{Name: "device_id", Type: ParamString, Description: "Unique device ID."},
			{Name: "settings", Type: ParamString, Description: "Push settings in a special format."},
			{Name: "key", Type: ParamString, Description: "Notification key."},
			{Name: "value", Type: ParamArray, Description: "New value for the key in a special format."},
		},
	},
	{
		Namespace: "account", Name: "getAppPermissions", Remote: "account.getAppPermissions",
		Summary: "Gets settings of the user in this application.",
		Params: []Param{
			{Name: "user_id", Type: ParamInteger, Description: "User ID whose settings information shall be got. By default: current user."},
		},
	},
	{
		Namespace: "account", Name: "getActiveOffers", Remote: "account.getActiveOffers",
		Summary: "Returns a list of active ads (offers) which executed by the user will bring him/her respective number of votes to his balance in the application.",
		Params: []Param{
			{Name: "count", Type: ParamInteger, Description: "Number of results to return."},
		},
	},
	{
		Namespace: "account", Name: "banUser", Remote: "account.banUser",
		Summary: "Adds user to the banlist.",
		Params: []Param{
			{Name: "user_id", Type: ParamInteger, Description: "User ID."},
		},
	},
	{
		Namespace: "account", Name: "unbanUser", Remote: "account.unbanUser",
		Summary: "Deletes user from the blacklist.",
		Params: []Param{
			{Name: "user_id", Type: ParamInteger, Description: "User ID."},
		},
	},
	{
		Namespace: "account", Name: "getBanned", Remote: "account.getBanned",
		Summary: "Returns a user's blacklist.",
		Params: []Param{
			{Name: "offset", Type: ParamInteger, Description: "Offset needed to return a specific subset of results."},
			{Name: "count", Type: ParamInteger, Description: "Number of results to return."},
		},
	},
	{
		Namespace: "account", Name: "getInfo", Remote: "account.getInfo",
		Summary: "Returns current account info.",
		Params: []Param{
			{Name: "fields", Type: ParamArray, Description: "Fields to return. Possible values: 'country' - user country,'https_required' - is \"HTTPS only\" option enabled,'own_posts_default' - is \"Show my posts only\" option is enabled,'no_wall_replies' - are wall replies disabled or not,'intro' - is intro passed by user or not,'lang' - user language. By default: all."},
		},
	},
	{
		Namespace: "account", Name: "setInfo", Remote: "account.setInfo",
		Summary: "Allows to edit the current account info.",
		Params: []Param{
			{Name: "name", Type: ParamString, Description: "Setting name."},
			{Name: "value", Type: ParamString, Description: "Setting value."},
		},
	},
	{
		Namespace: "account", Name: "changePassword", Remote: "account.changePassword",
		Summary: "Changes a user password after access is successfully restored with the auth.restore method.",
		Params: []Param{
			{Name: "restore_sid", Type: ParamString, Description: "Session id received after the auth.restore method is executed. (If the password is changed right after the access was restored)"},
			{Name: "change_password_hash", Type: ParamString, Description: "Hash received after a successful OAuth authorization with a code got by SMS. (If the password is changed right after the access was restored)"},
			{Name: "old_password", Type: ParamString, Description: "Current user password."},
			{Name: "new_password", Type: ParamString, Description: "New password that will be set as a current"},
		},
	},
	{Namespace: "account", Name: "getProfileInfo", Remote: "account.getProfileInfo", Summary: "Returns the current account info."},
	{
		Namespace: "account", Name: "saveProfileInfo", Remote: "account.saveProfileInfo",
		Summary: "Edits current profile info.",
		Params: []Param{
			{Name: "first_name", Type: ParamString, Description: "User first name."},
			{Name: "last_name", Type: ParamString, Description: "User last name."},
			{Name: "maiden_name", Type: ParamString, Description: "User maiden name (female only)"},
			{Name: "screen_name", Type: ParamString, Description: "User screen name."},
			{Name: "cancel_request_id", Type: ParamInteger, Description: "ID of the name change request to be canceled. If this parameter is sent, all the others are ignored."},
			{Name: "sex", Type: ParamEnum, Values: []string{"0", "1", "2"}, Description: "User sex. Possible values: '1' – female, '2' – male."},
			{Name: "relation", Type: ParamEnum, Values: []string{"0", "1", "2", "3", "4", "5", "6", "7"}, Description: "User relationship status. Possible values: '1' – single, '2' – in a relationship, '3' – engaged, '4' – married, '5' – it's complicated, '6' – actively searching, '7' – in love, '0' – not specified."},
			{Name: "relation_partner_id", Type: ParamInteger, Description: "ID of the relationship partner."},
			{Name: "bdate", Type: ParamString, Description: "User birth date, format: DD.MM.YYYY."},
			{Name: "bdate_visibility", Type: ParamEnum, Values: []string{"0", "1", "2"}, Description: "Birth date visibility. Returned values: '1' – show birth date, '2' – show only month and day, '0' – hide birth date."},
			{Name: "home_town", Type: ParamString, Description: "User home town."},
			{Name: "country_id", Type: ParamInteger, Description: "User country."},
			{Name: "city_id", Type: ParamInteger, Description: "User city."},
			{Name: "status", Type: ParamString, Description: "Status text."},
		},
	},

	// board
	{
		Namespace: "board", Name: "getTopics", Remote: "board.getTopics",
		Summary: "Returns a list of topics on a community's discussion board.",
		Params: []Param{
			{Name: "group_id", Type: ParamInteger, Description: "ID of the community that owns the discussion board."},
			{Name: "topic_ids", Type: ParamArray, Description: "IDs of topics to be returned (100 maximum). By default, all topics are returned. If this parameter is set, the 'order', 'offset', and 'count' parameters are ignored."},
			{Name: "order", Type: ParamEnum, Values: []string{"1", "2", "-1", "-2"}, Description: "Sort order: '1' - by date updated in reverse chronological order. '2' - by date created in reverse chronological order. '-1' - by date updated in chronological order. '-2' - by date created in chronological order. If no sort order is specified, topics are returned in the order specified by the group administrator. Pinned topics are returned first, regardless of the sorting."},
			{Name: "offset", Type: ParamInteger, Description: "Offset needed to return a specific subset of topics."},
			{Name: "count", Type: ParamInteger, Description: "Number of topics to return."},
			{Name: "extended", Type: ParamBoolean, Description: "'1' - to return information about users who created topics or who posted there last, '0' - to return no additional fields (default)"},
			{Name: "preview", Type: ParamEnum, Values: []string{"0", "1", "2"}, Description: "'1' - to return the first comment in each topic, '2' - to return the last comment in each topic, '0' - to return no comments. By default: '0'."},
			{Name: "preview_length", Type: ParamInteger, Description: "Number of characters after which to truncate the previewed comment. To preview the full comment, specify '0'."},
		},
	},
	{
		Namespace: "board", Name: "getComments", Remote: "board.getComments",
		Summary: "Returns a list of comments on a topic on a community's discussion board.",
		Params: []Param{
			{Name: "group_id", Type: ParamInteger, Description: "ID of the community that owns the discussion board."},
			{Name: "topic_id", Type: ParamInteger, Description: "Topic ID."},
			{Name: "need_likes", Type: ParamBoolean, Description: "'1' - to return the 'likes' field, '0' - not to return the 'likes' field (default)"},
			{Name: "start_comment_id", Type: ParamInteger},
			{Name: "offset", Type: ParamInteger, Description: "Offset needed to return a specific subset of comments."},
			{Name: "count", Type: ParamInteger, Description: "Number of comments to return."},
			{Name: "extended", Type: ParamBoolean, Description: "'1' - to return information about users who posted comments, '0' - to return no additional fields (default)"},
			{Name: "sort", Type: ParamEnum, Values: []string{"asc", "desc"}, Description: "Sort order: 'asc' - by creation date in chronological order, 'desc' - by creation date in reverse chronological order,"},
		},
	},
	{
		Namespace: "board", Name: "addTopic", Remote: "board.addTopic",
		Summary: "Creates a new topic on a community's discussion board.",
		Params: []Param{
			{Name: "group_id", Type: ParamInteger, Description: "ID of the community that owns the discussion board."},
			{Name: "title", Type: ParamString, Description: "Topic title."},
			{Name: "text", Type: ParamString, Description: "Text of the topic."},
			{Name: "from_group", Type: ParamBoolean, Description: "For a community: '1' - to post the topic as by the community, '0' - to post the topic as by the user (default)"},
			{Name: "attachments", Type: ParamArray, Description: "List of media objects attached to the topic, in the following format: \"<owner_id>_<media_id>,<owner_id>_<media_id>\", '' - Type of media object: 'photo' - photo, 'video' - video, 'audio' - audio, 'doc' - document, '<owner_id>' - ID of the media owner. '<media_id>' - Media ID. Example: \"photo100172_166443618,photo66748_265827614\", , \"NOTE: If you try to attach more than one reference, an error will be thrown.\","},
		},
	},
	{
		Namespace: "board", Name: "createComment", Remote: "board.createComment",
		Summary: "Adds a comment on a topic on a community's discussion board.",
		Params: []Param{
			{Name: "group_id", Type: ParamInteger, Description: "ID of the community that owns the discussion board."},
			{Name: "topic_id", Type: ParamInteger, Description: "ID of the topic to be commented on."},
			{Name: "message", Type: ParamString, Description: "(Required if 'attachments' is not set.) Text of the comment."},
			{Name: "attachments", Type: ParamArray, Description: "(Required if 'text' is not set.) List of media objects attached to the comment, in the following format: \"<owner_id>_<media_id>,<owner_id>_<media_id>\", '' - Type of media object: 'photo' - photo, 'video' - video, 'audio' - audio, 'doc' - document, '<owner_id>' - ID of the media owner. '<media_id>' - Media ID."},
			{Name: "from_group", Type: ParamBoolean, Description: "'1' - to post the comment as by the community, '0' - to post the comment as by the user (default)"},
			{Name: "sticker_id", Type: ParamInteger, Description: "Sticker ID."},
			{Name: "guid", Type: ParamString, Description: "Unique identifier to avoid repeated comments."},
		},
	},
	{
		Namespace: "board", Name: "deleteTopic", Remote: "board.deleteTopic",
		Summary: "Deletes a topic from a community's discussion board.",
		Params: []Param{
			{Name: "group_id", Type: ParamInteger, Description: "ID of the community that owns the discussion board."},
			{Name: "topic_id", Type: ParamInteger, Description: "Topic ID."},
		},
	},
	{
		Namespace: "board", Name: "editTopic", Remote: "board.editTopic",
		Summary: "Edits the title of a topic on a community's discussion board.",
		Params: []Param{
			{Name: "group_id", Type: ParamInteger, Description: "ID of the community that owns the discussion board."},
			{Name: "topic_id", Type: ParamInteger, Description: "Topic ID."},
			{Name: "title", Type: ParamString, Description: "New title of the topic."},
		},
	},
	{
		Namespace: "board", Name: "editComment", Remote: "board.editComment",
		Summary: "Edits a comment on a topic on a community's discussion board.",
		Params: []Param{
			{Name: "group_id", Type: ParamInteger, Description: "ID of the community that owns the discussion board."},
			{Name: "topic_id", Type: ParamInteger, Description: "Topic ID."},
			{Name: "comment_id", Type: ParamInteger, Description: "ID of the comment on the topic."},
			{Name: "message", Type: ParamString, Description: "(Required if 'attachments' is not set). New comment text."},
			{Name: "attachments", Type: ParamArray, Description: "(Required if 'message' is not set.) List of media objects attached to the comment, in the following format: \"<owner_id>_<media_id>,<owner_id>_<media_id>\", '' - Type of media object: 'photo' - photo, 'video' - video, 'audio' - audio, 'doc' - document, '<owner_id>' - ID of the media owner. '<media_id>' - Media ID. Example: \"photo100172_166443618,photo66748_265827614\""},
		},
	},
	{
		Namespace: "board", Name: "restoreComment", Remote: "board.restoreComment",
		Summary: "Restores a comment deleted from a topic on a community's discussion board.",
		Params: []Param{
			{Name: "group_id", Type: ParamInteger, Description: "ID of the community that owns the discussion board."},
			{Name: "topic_id", Type: ParamInteger, Description: "Topic ID."},
			{Name: "comment_id", Type: ParamInteger, Description: "Comment ID."},
		},
	},
	{
		Namespace: "board", Name: "deleteComment", Remote: "board.deleteComment",
		Summary: "Deletes a comment on a topic on a community's discussion board.",
		Params: []Param{
			{Name: "group_id", Type: ParamInteger, Description: "ID of the community that owns the discussion board."},
			{Name: "topic_id", Type: ParamInteger, Description: "Topic ID."},
			{Name: "comment_id", Type: ParamInteger, Description: "Comment ID."},
		},
	},
	{
		Namespace: "board", Name: "openTopic", Remote: "board.openTopic",
		Summary: "Re-opens a previously closed topic on a community's discussion board.",
		Params: []Param{
			{Name: "group_id", Type: ParamInteger, Description: "ID of the community that owns the discussion board."},
			{Name: "topic_id", Type: ParamInteger, Description: "Topic ID."},
		},
	},
	{
		Namespace: "board", Name: "closeTopic", Remote: "board.closeTopic",
		Summary: "Closes a topic on a community's discussion board so that comments cannot be posted.",
		Params: []Param{
			{Name: "group_id", Type: ParamInteger, Description: "ID of the community that owns the discussion board."},
			{Name: "topic_id", Type: ParamInteger, Description: "Topic ID."},
		},
	},
	{
		Namespace: "board", Name: "fixTopic", Remote: "board.fixTopic",
		Summary: "Pins a topic (fixes its place) to the top of a community's discussion board.",
		Params: []Param{
			{Name: "group_id", Type: ParamInteger, Description: "ID of the community that owns the discussion board."},
			{Name: "topic_id", Type: ParamInteger, Description: "Topic ID."},
		},
	},
	{
		Namespace: "board", Name: "unfixTopic", Remote: "board.unfixTopic",
		Summary: "Unpins a pinned topic from the top of a community's discussion board.",
		Params: []Param{
			{Name: "group_id", Type: ParamInteger, Description: "ID of the community that owns the discussion board."},
			{Name: "topic_id", Type: ParamInteger, Description: "Topic ID."},
		},
	},

	// leads
	{
		Namespace: "leads", Name: "complete", Remote: "leads.complete",
		Summary: "Completes the lead started by user.",
		Params: []Param{
			{Name: "vk_sid", Type: ParamString, Description: "Session obtained as GET parameter when session started."},
			{Name: "secret", Type: ParamString, Description: "Secret key from the lead testing interface."},
			{Name: "comment", Type: ParamString, Description: "Comment text."},
		},
	},
	{
		Namespace: "leads", Name: "start", Remote: "leads.start",
		Summary: "Creates new session for the user passing the offer.",
		Params: []Param{
			{Name: "lead_id", Type: ParamInteger, Description: "Lead ID."},
			{Name: "secret", Type: ParamString, Description: "Secret key from the lead testing interface."},
		},
	},
	{
		Namespace: "leads", Name: "getStats", Remote: "leads.getStats",
		Summary: "Returns lead stats data.",
		Params: []Param{
			{Name: "lead_id", Type: ParamInteger, Description: "Lead ID."},
			{Name: "secret", Type: ParamString, Description: "Secret key obtained from the lead testing interface."},
			{Name: "date_start", Type: ParamString, Description: "Day to start stats from (YYYY_MM_DD, e.g.2011-09-17)."},
			{Name: "date_end", Type: ParamString, Description: "Day to finish stats (YYYY_MM_DD, e.g.2011-09-17)."},
		},
	},
	{
		Namespace: "leads", Name: "getUsers", Remote: "leads.getUsers",
		Summary: "Returns a list of last user actions for the offer.",
		Params: []Param{
			{Name: "offer_id", Type: ParamInteger, Description: "Offer ID."},
			{Name: "secret", Type: ParamString, Description: "Secret key obtained in the lead testing interface."},
			{Name: "offset", Type: ParamInteger, Description: "Offset needed to return a specific subset of results."},
			{Name: "count", Type: ParamInteger, Description: "Number of results to return."},
			{Name: "status", Type: ParamEnum, Values: []string{"0", "1", "2", "3", "4"}, Description: "Action type. Possible values: '0' - start,'1' - finish,'2' - blocking users,'3' - start in a test mode,'4' - finish in a test mode."},
			{Name: "reverse", Type: ParamBoolean, Description: "Sort order. Possible values: '1' - chronological,'0' - reverse chronological."},
		},
	},
	{
		Namespace: "leads", Name: "checkUser", Remote: "leads.checkUser",
		Summary: "Checks if the user can start the lead.",
		Params: []Param{
			{Name: "lead_id", Type: ParamInteger, Description: "Lead ID."},
			{Name: "test_result", Type: ParamInteger, Description: "Value to be return in 'result' field when test mode is used."},
			{Name: "age", Type: ParamInteger, Description: "User age."},
			{Name: "country", Type: ParamString, Description: "User country code."},
		},
	},
	{
		Namespace: "leads", Name: "metricHit", Remote: "leads.metricHit",
		Summary: "Counts the metric event.",
		Params: []Param{
			{Name: "data", Type: ParamString, Description: "Metric data obtained in the lead interface."},
		},
	},

	// likes
	{Namespace: "likes", Name: "getList", Remote: "likes.getList", Summary: "Returns a list of IDs of users who added the specified object to their 'Likes' list."},
	{Namespace: "likes", Name: "add", Remote: "likes.add", Summary: "Adds the specified object to the 'Likes' list of the current user."},
	{Namespace: "likes", Name: "delete", Remote: "likes.delete", Summary: "Deletes the specified object from the 'Likes' list of the current user."},
	{Namespace: "likes", Name: "isLiked", Remote: "likes.isLiked", Summary: "Checks for the object in the 'Likes' list of the specified user."},

	// secure
	{Namespace: "secure", Name: "getAppBalance", Remote: "secure.getAppBalance", Summary: "Returns payment balance of the application in hundredth of a vote."},
	{Namespace: "secure", Name: "getTransactionsHistory", Remote: "secure.getTransactionsHistory", Summary: "Shows history of votes transaction between users and the application."},
	{
		Namespace: "secure", Name: "getSMSHistory", Remote: "secure.getSMSHistory",
		Summary: "Shows a list of SMS notifications sent by the application using secure.sendSMSNotification method.",
		Params: []Param{
			{Name: "user_id", Type: ParamInteger},
			{Name: "date_from", Type: ParamInteger, Description: "filter by start date. It is set as UNIX-time."},
			{Name: "date_to", Type: ParamInteger, Description: "filter by end date. It is set as UNIX-time."},
			{Name: "limit", Type: ParamInteger, Description: "number of returned posts. By default - 1000."},
		},
	},
	{
		Namespace: "secure", Name: "sendSMSNotification", Remote: "secure.sendSMSNotification",
		Summary: "Sends 'SMS' notification to a user's mobile device.",
		Params: []Param{
			{Name: "user_id", Type: ParamInteger, Description: "ID of the user to whom SMS notification is sent. The user shall allow the application to send him/her notifications (, +1)."},
			{Name: "message", Type: ParamString, Description: "'SMS' text to be sent in 'UTF-8' encoding. Only Latin letters and numbers are allowed. Maximum size is '160' characters."},
		},
	},
	{
		Namespace: "secure", Name: "sendNotification", Remote: "secure.sendNotification",
		Summary: "Sends notification to the user.",
		Params: []Param{
			{Name: "user_ids", Type: ParamArray},
			{Name: "user_id", Type: ParamInteger},
			{Name: "message", Type: ParamString, Description: "notification text which should be sent in 'UTF-8' encoding ('254' characters maximum)."},
		},
	},
	{
		Namespace: "secure", Name: "setCounter", Remote: "secure.setCounter",
		Summary: "Sets a counter which is shown to the user in bold in the left menu.",
		Params: []Param{
			{Name: "counters", Type: ParamArray},
			{Name: "user_id", Type: ParamInteger},
			{Name: "counter", Type: ParamInteger, Description: "counter value."},
		},
	},
	{
		Namespace: "secure", Name: "setUserLevel", Remote: "secure.setUserLevel",
		Summary: "Sets user game level in the application which can be seen by his/her friends.",
		Params: []Param{
			{Name: "levels", Type: ParamArray},
			{Name: "user_id", Type: ParamInteger},
			{Name: "level", Type: ParamInteger, Description: "level value."},
		},
	},
	{
		Namespace: "secure", Name: "getUserLevel", Remote: "secure.getUserLevel",
		Summary: "Returns one of the previously set game levels of one or more users in the application.",
		Params: []Param{
			{Name: "user_ids", Type: ParamArray},
		},
	},
	{
		Namespace: "secure", Name: "addAppEvent", Remote: "secure.addAppEvent",
		Summary: "Adds user activity information to an application.",
		Params: []Param{
			{Name: "user_id", Type: ParamInteger, Description: "ID of a user to save the data"},
			{Name: "activity_id", Type: ParamInteger, Description: "there are 2 default activities: 1 – level. Works similar to , 2 – points, saves points amount, Any other value is for saving completed missions"},
			{Name: "value", Type: ParamInteger, Description: "depends on activity_id: * 1 – number, current level number, 2 – number, current user's points amount, , Any other value is ignored"},
		},
	},
	{
		Namespace: "secure", Name: "checkToken", Remote: "secure.checkToken",
		Summary: "Checks the user authentication in 'IFrame' and 'Flash' apps using the 'access_token' parameter.",
		Params: []Param{
			{Name: "token", Type: ParamString, Description: "client 'access_token'"},
			{Name: "ip", Type: ParamString, Description: "user 'ip address'. Note that user may access using the 'ipv6' address, in this case it is required to transmit the 'ipv6' address. If not transmitted, the address will not be checked."},
		},
	},

	// wall
	{
		Namespace: "wall", Name: "get", Remote: "wall.get",
		Summary: "Returns a list of posts on a user wall or community wall.",
		Params: []Param{
			{Name: "owner_id", Type: ParamInteger, Description: "ID of the user or community that owns the wall. By default, current user ID. Use a negative value to designate a community ID."},
			{Name: "domain", Type: ParamString, Description: "User or community short address."},
			{Name: "offset", Type: ParamInteger, Description: "Offset needed to return a specific subset of posts."},
			{Name: "count", Type: ParamInteger, Description: "Number of posts to return (maximum 100)."},
			{Name: "filter", Type: ParamEnum, Values: []string{"owner", "others", "all", "postponed", "suggests"}, Description: "Filter to apply: 'owner' - posts by the wall owner, 'others' - posts by someone else, 'all' - posts by the wall owner and others (default), 'postponed' - timed posts (only available for calls with an 'access_token'), 'suggests' - suggested posts on a community wall"},
			{Name: "extended", Type: ParamBoolean, Description: "'1' - to return 'wall', 'profiles', and 'groups' fields, '0' - to return no additional fields (default)"},
			{Name: "fields", Type: ParamArray},
		},
	},
	{
		Namespace: "wall", Name: "search", Remote: "wall.search",
		Summary: "Allows to search posts on user or community walls.",
		Params: []Param{
			{Name: "owner_id", Type: ParamInteger, Description: "user or community id. \"Remember that for a community 'owner_id' must be negative.\""},
			{Name: "domain", Type: ParamString, Description: "user or community screen name."},
			{Name: "query", Type: ParamString, Description: "search query string."},
			{Name: "owners_only", Type: ParamBoolean, Description: "'1' – returns only page owner's posts."},
			{Name: "count", Type: ParamInteger, Description: "count of posts to return."},
			{Name: "offset", Type: ParamInteger, Description: "Offset needed to return a specific subset of posts."},
			{Name: "extended", Type: ParamBoolean, Description: "show extended post info."},
			{Name: "fields", Type: ParamArray},
		},
	},
	{
		Namespace: "wall", Name: "getById", Remote: "wall.getById",
		Summary: "Returns a list of posts from user or community walls by their IDs.",
		Params: []Param{
			{Name: "posts", Type: ParamArray, Description: "User or community IDs and post IDs, separated by underscores. Use a negative value to designate a community ID. Example: \"93388_21539,93388_20904,2943_4276,-1_1\""},
			{Name: "extended", Type: ParamBoolean, Description: "'1' - to return user and community objects needed to display posts, '0' - no additional fields are returned (default)"},
			{Name: "copy_history_depth", Type: ParamInteger, Description: "Sets the number of parent elements to include in the array 'copy_history' that is returned if the post is a repost from another wall."},
			{Name: "fields", Type: ParamArray},
		},
	},
	{
		Namespace: "wall", Name: "post", Remote: "wall.post",
		Summary: "Adds a new post on a user wall or community wall. Can also be used to publish suggested or scheduled posts.",
		Params: []Param{
			{Name: "owner_id", Type: ParamInteger, Description: "User ID or community ID. Use a negative value to designate a community ID."},
			{Name: "friends_only", Type: ParamBoolean, Description: "'1' - post will be available to friends only, '0' - post will be available to all users (default)"},
			{Name: "from_group", Type: ParamBoolean, Description: "For a community: '1' - post will be published by the community, '0' - post will be published by the user (default)"},
			{Name: "message", Type: ParamString, Description: "(Required if 'attachments' is not set.) Text of the post."},
			{Name: "attachments", Type: ParamArray, Description: "(Required if 'message' is not set.) List of objects attached to the post, in the following format: \"<owner_id>_<media_id>,<owner_id>_<media_id>\", '' - Type of media attachment: 'photo' - photo, 'video' - video, 'audio' - audio, 'doc' - document, 'page' - wiki-page, 'note' - note, 'poll' - poll, 'album' - photo album, '<owner_id>' - ID of the media application owner. '<media_id>' - Media application ID. Example: \"photo100172_166443618,photo66748_265827614\", May contain a link to an external page to include in the post. Example: \"photo66748_265827614,http://habrahabr.ru\", \"NOTE: If more than one link is being attached, an error will be thrown.\""},
			{Name: "services", Type: ParamString, Description: "List of services or websites the update will be exported to, if the user has so requested. Sample values: 'twitter', 'facebook'."},
			{Name: "signed", Type: ParamBoolean, Description: "Only for posts in communities with 'from_group' set to '1': '1' - post will be signed with the name of the posting user, '0' - post will not be signed (default)"},
			{Name: "publish_date", Type: ParamInteger, Description: "Publication date (in Unix time). If used, posting will be delayed until the set time."},
			{Name: "lat", Type: ParamNumber, Description: "Geographical latitude of a check-in, in degrees (from -90 to 90)."},
			{Name: "long", Type: ParamNumber, Description: "Geographical longitude of a check-in, in degrees (from -180 to 180)."},
			{Name: "place_id", Type: ParamInteger, Description: "ID of the location where the user was tagged."},
			{Name: "post_id", Type: ParamInteger, Description: "Post ID. Used for publishing of scheduled and suggested posts."},
			{Name: "guid", Type: ParamString},
			{Name: "mark_as_ads", Type: ParamBoolean},
		},
	},
	{
		Namespace: "wall", Name: "repost", Remote: "wall.repost",
		Summary: "Reposts (copies) an object to a user wall or community wall.",
		Params: []Param{
			{Name: "object", Type: ParamString, Description: "ID of the object to be reposted on the wall. Example: \"wall66748_3675\""},
			{Name: "message", Type: ParamString, Description: "Comment to be added along with the reposted object."},
			{Name: "group_id", Type: ParamInteger, Description: "Target community ID when reposting to a community."},
			{Name: "mark_as_ads", Type: ParamBoolean},
		},
	},
	{
		Namespace: "wall", Name: "getReposts", Remote: "wall.getReposts",
		Summary: "Returns information about reposts of a post on user wall or community wall.",
		Params: []Param{
			{Name: "owner_id", Type: ParamInteger, Description: "User ID or community ID. By default, current user ID. Use a negative value to designate a community ID."},
			{Name: "post_id", Type: ParamInteger, Description: "Post ID."},
			{Name: "offset", Type: ParamInteger, Description: "Offset needed to return a specific subset of reposts."},
			{Name: "count", Type: ParamInteger, Description: "Number of reposts to return."},
		},
	},
	{
		Namespace: "wall", Name: "edit", Remote: "wall.edit",
		Summary: "Edits a post on a user wall or community wall.",
		Params: []Param{
			{Name: "owner_id", Type: ParamInteger, Description: "User ID or community ID. Use a negative value to designate a community ID."},
			{Name: "post_id", Type: ParamInteger, Description: "Post ID."},
			{Name: "friends_only", Type: ParamBoolean, Description: "(Applies only when editing a scheduled post.), '1' - post will be available to friends only, '0' - post will be available to all users (default)"},
			{Name: "message", Type: ParamString, Description: "(Required if 'attachments' is not set.) Text of the post."},
			{Name: "attachments", Type: ParamArray, Description: "(Required if 'message' is not set.) List of objects attached to the post, in the following format: \"<owner_id>_<media_id>,<owner_id>_<media_id>\", '' - Type of media attachment: 'photo' - photo, 'video' - video, 'audio' - audio, 'doc' - document, '<owner_id>' - ID of the media application owner. '<media_id>' - Media application ID. Example: \"photo100172_166443618,photo66748_265827614\", May contain a link to an external page to include in the post. Example: \"photo66748_265827614,http://habrahabr.ru\", \"NOTE: If more than one link is being attached, an error is thrown.\""},
			{Name: "services", Type: ParamString, Description: "(Applies only to a scheduled post.) List of services or websites where status will be updated, if the user has so requested. Sample values: 'twitter', 'facebook'."},
			{Name: "signed", Type: ParamBoolean, Description: "(Applies only to a post that was created \"as community\" on a community wall.), '1' - to add the signature of the user who created the post"},
			{Name: "publish_date", Type: ParamInteger, Description: "(Applies only to a scheduled post.) Publication date (in Unix time). If used, posting will be delayed until the set time."},
			{Name: "lat", Type: ParamNumber, Description: "Geographical latitude of the check-in, in degrees (from -90 to 90)."},
			{Name: "long", Type: ParamNumber, Description: "Geographical longitude of the check-in, in degrees (from -180 to 180)."},
			{Name: "place_id", Type: ParamInteger, Description: "ID of the location where the user was tagged."},
			{Name: "mark_as_ads", Type: ParamBoolean},
		},
	},
	{
		Namespace: "wall", Name: "delete", Remote: "wall.delete",
		Summary: "Deletes a post from a user wall or community wall.",
		Params: []Param{
			{Name: "owner_id", Type: ParamInteger, Description: "User ID or community ID. Use a negative value to designate a community ID."},
			{Name: "post_id", Type: ParamInteger, Description: "ID of the post to be deleted."},
		},
	},
	{
		Namespace: "wall", Name: "restore", Remote: "wall.restore",
		Summary: "Restores a post deleted from a user wall or community wall.",
		Params: []Param{
			{Name: "owner_id", Type: ParamInteger, Description: "User ID or community ID from whose wall the post was deleted. Use a negative value to designate a community ID."},
			{Name: "post_id", Type: ParamInteger, Description: "ID of the post to be restored."},
		},
	},
	{
		Namespace: "wall", Name: "pin", Remote: "wall.pin",
		Summary: "Pins the post on wall.",
		Params: []Param{
			{Name: "owner_id", Type: ParamInteger, Description: "ID of the user or community that owns the wall. By default, current user ID. Use a negative value to designate a community ID."},
			{Name: "post_id", Type: ParamInteger, Description: "Post ID."},
		},
	},
	{
		Namespace: "wall", Name: "unpin", Remote: "wall.unpin",
		Summary: "Unpins the post on wall.",
		Params: []Param{
			{Name: "owner_id", Type: ParamInteger, Description: "ID of the user or community that owns the wall. By default, current user ID. Use a negative value to designate a community ID."},
			{Name: "post_id", Type: ParamInteger, Description: "Post ID."},
		},
	},
	{
		Namespace: "wall", Name: "getComments", Remote: "wall.getComments",
		Summary: "Returns a list of comments on a post on a user wall or community wall.",
		Params: []Param{
			{Name: "owner_id", Type: ParamInteger, Description: "User ID or community ID. Use a negative value to designate a community ID."},
			{Name: "post_id", Type: ParamInteger, Description: "Post ID."},
			{Name: "need_likes", Type: ParamBoolean, Description: "'1' - to return the 'likes' field, '0' - not to return the 'likes' field (default)"},
			{Name: "start_comment_id", Type: ParamInteger},
			{Name: "offset", Type: ParamInteger, Description: "Offset needed to return a specific subset of comments."},
			{Name: "count", Type: ParamInteger, Description: "Number of comments to return (maximum 100)."},
			{Name: "sort", Type: ParamEnum, Values: []string{"asc", "desc"}, Description: "Sort order: 'asc' - chronological, 'desc' - reverse chronological"},
			{Name: "preview_length", Type: ParamInteger, Description: "Number of characters at which to truncate comments when previewed. By default, '90'. Specify '0' if you do not want to truncate comments."},
			{Name: "extended", Type: ParamBoolean},
		},
	},
	{
		Namespace: "wall", Name: "createComment", Remote: "wall.createComment",
		Summary: "Adds a comment to a post on a user wall or community wall.",
		Params: []Param{
			{Name: "owner_id", Type: ParamInteger, Description: "User ID or community ID. Use a negative value to designate a community ID."},
			{Name: "post_id", Type: ParamInteger, Description: "Post ID."},
			{Name: "from_group", Type: ParamInteger, Description: "Group ID."},
			{Name: "message", Type: ParamString, Description: "(Required if 'attachments' is not set.) Text of the comment."},
			{Name: "reply_to_comment", Type: ParamInteger, Description: "ID of comment to reply."},
			{Name: "attachments", Type: ParamArray, Description: "(Required if 'message' is not set.) List of media objects attached to the comment, in the following format: \"<owner_id>_<media_id>,<owner_id>_<media_id>\", '' - Type of media ojbect: 'photo' - photo, 'video' - video, 'audio' - audio, 'doc' - document, '<owner_id>' - ID of the media owner. '<media_id>' - Media ID. For example: \"photo100172_166443618,photo66748_265827614\""},
			{Name: "sticker_id", Type: ParamInteger, Description: "Sticker ID."},
			{Name: "guid", Type: ParamString, Description: "Unique identifier to avoid repeated comments."},
		},
	},
	{
		Namespace: "wall", Name: "editComment", Remote: "wall.editComment",
		Summary: "Edits a comment on a user wall or community wall.",
		Params: []Param{
			{Name: "owner_id", Type: ParamInteger, Description: "User ID or community ID. Use a negative value to designate a community ID."},
			{Name: "comment_id", Type: ParamInteger, Description: "Comment ID."},
			{Name: "message", Type: ParamString, Description: "New comment text."},
			{Name: "attachments", Type: ParamArray, Description: "List of objects attached to the comment, in the following format: \"<owner_id>_<media_id>,<owner_id>_<media_id>\", '' - Type of media attachment: 'photo' - photo, 'video' - video, 'audio' - audio, 'doc' - document, '<owner_id>' - ID of the media attachment owner. '<media_id>' - Media attachment ID. For example: \"photo100172_166443618,photo66748_265827614\""},
		},
	},
	{
		Namespace: "wall", Name: "deleteComment", Remote: "wall.deleteComment",
		Summary: "Deletes a comment on a post on a user wall or community wall.",
		Params: []Param{
			{Name: "owner_id", Type: ParamInteger, Description: "User ID or community ID. Use a negative value to designate a community ID."},
			{Name: "comment_id", Type: ParamInteger, Description: "Comment ID."},
		},
	},
	{
		Namespace: "wall", Name: "restoreComment", Remote: "wall.restoreComment",
		Summary: "Restores a comment deleted from a user wall or community wall.",
		Params: []Param{
			{Name: "owner_id", Type: ParamInteger, Description: "User ID or community ID. Use a negative value to designate a community ID."},
			{Name: "comment_id", Type: ParamInteger, Description: "Comment ID."},
		},
	},
	{
		Namespace: "wall", Name: "reportPost", Remote: "wall.reportPost",
		Summary: "Reports (submits a complaint about) a post on a user wall or community wall.",
		Params: []Param{
			{Name: "owner_id", Type: ParamInteger, Description: "ID of the user or community that owns the wall."},
			{Name: "post_id", Type: ParamInteger, Description: "Post ID."},
			{Name: "reason", Type: ParamEnum, Values: []string{"0", "1", "2", "3", "4", "5", "6"}, Description: "Reason for the complaint: '0' – spam, '1' – child pornography, '2' – extremism, '3' – violence, '4' – drug propaganda, '5' – adult material, '6' – insult, abuse"},
		},
	},
	{
		Namespace: "wall", Name: "reportComment", Remote: "wall.reportComment",
		Summary: "Reports (submits a complaint about) a comment on a post on a user wall or community wall.",
		Params: []Param{
			{Name: "owner_id", Type: ParamInteger, Description: "ID of the user or community that owns the wall."},
			{Name: "comment_id", Type: ParamInteger, Description: "Comment ID."},
			{Name: "reason", Type: ParamEnum, Values: []string{"0", "1", "2", "3", "4", "5", "6"}, Description: "Reason for the complaint: '0' – spam, '1' – child pornography, '2' – extremism, '3' – violence, '4' – drug propaganda, '5' – adult material, '6' – insult, abuse"},
		},
	},
}
